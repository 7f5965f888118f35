// Package phonetic converts raw characters into phonetic words suitable for
// reading a password aloud. Latin letters map to the NATO alphabet (capitals
// in upper case), digits and punctuation to their spoken names and ASCII
// control codes to their mnemonics.
package phonetic
