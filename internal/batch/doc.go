// Package batch reads input for transcription: named files, standard input
// or a hidden terminal prompt. Lines are handed out with their terminators
// so that control characters, including the newline itself, are transcribed.
package batch
