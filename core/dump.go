package core

import (
	"io"
	"os"
)

// Extension is appended to every path passed to GenerateTex.
const Extension = ".tex"

// Dump renders d once and writes the result to w in a single write. w is not
// closed.
func Dump(w io.Writer, d Dumper) error {
	s, err := d.Dumps()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// DumpsPackages renders the packages required by o.
func DumpsPackages(o Object) (string, error) {
	return o.Packages().Dumps()
}

// DumpPackages writes the packages required by o to w.
func DumpPackages(w io.Writer, o Object) error {
	return Dump(w, o.Packages())
}

// GenerateTex writes d to path+Extension, creating or truncating the file.
// Output is written as UTF-8. The file is closed on every return path; a
// failed render or write may leave a partial file behind.
func GenerateTex(path string, d Dumper) (err error) {
	f, err := os.Create(path + Extension)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Dump(f, d)
}

// DumpsAsContent renders o for inclusion in a body, surrounding it with blank
// lines according to its Spacing.
func DumpsAsContent(o Dumper) (string, error) {
	s, err := o.Dumps()
	if err != nil {
		return "", err
	}
	sp, ok := o.(interface{ ContentSpacing() Spacing })
	if !ok {
		return s, nil
	}
	spacing := sp.ContentSpacing()
	if spacing.Begin {
		s = "\n\n" + s
	}
	if spacing.End {
		s += "\n\n"
	}
	return s, nil
}
