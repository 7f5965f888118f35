// Package processor drives input through the phonetic transcoder. It reads
// sources line by line, writes one output record per line in the selected
// format and optionally hands every line to a speech provider.
package processor
