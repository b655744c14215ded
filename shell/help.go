package shell

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path/to/structure> - load a grid structure file ('_' = open cell)\n")
	io.WriteString(w, "words <path|url> - load a word list (newline-delimited)\n")
	io.WriteString(w, "solve - fill the loaded grid with the loaded words\n")
	io.WriteString(w, "show - print the last fill (or the empty grid)\n")
	io.WriteString(w, "save <out.png> - write the last fill as an image\n")
	io.WriteString(w, "seed <n> - fix the variable tie-break seed (reproducible solves)\n")
	io.WriteString(w, "random on|off - uniform random tie-break instead of first-in-order\n")
	io.WriteString(w, "exit - quit\n")
}
