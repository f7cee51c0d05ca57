package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/errmodel/chain"
)

const (
	// NumberFile is the file OpenFile1 reads.
	NumberFile = "nonexistent_file"

	// LogFile is the file OpenFile2 opens.
	LogFile = "nonexistent_logfile"
)

// OpenFile1 reads NumberFile and parses its contents as an unsigned integer.
// Both the read and the parse failure are wrapped without extra context.
func OpenFile1(fs billy.Filesystem) (uint64, error) {
	data, err := util.ReadFile(fs, NumberFile)
	if err != nil {
		return 0, chain.From(err)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, chain.From(err)
	}
	return n, nil
}

// OpenFile2 opens LogFile and reports which file could not be opened.
func OpenFile2(fs billy.Filesystem) error {
	f, err := fs.Open(LogFile)
	if err := chain.WithContext(err, func() string {
		return fmt.Sprintf("failed to open %q", LogFile)
	}); err != nil {
		return err
	}
	return chain.From(f.Close())
}
