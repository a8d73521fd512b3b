package cli

import (
	"errors"
	"io"
	"os"
)

// errTerminal is returned when binary output would go to a terminal.
var errTerminal = errors.New("refusing to write binary data to a terminal (use --force)")

// ReadInput reads all of the named file, or stdin for "-".
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// WriteOutput writes data to the named file, or to stdout when name is
// empty or "-". The file is only created here, after the data is
// complete.
func WriteOutput(name string, data []byte, stdout io.Writer, force bool) error {
	if name == "" || name == "-" {
		if !force && isTerminal(stdout) {
			return errTerminal
		}
		return writeAll(stdout, data)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := writeAll(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAll(w io.Writer, data []byte) error {
	n, err := w.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return io.ErrShortWrite
	}
	return nil
}
