package main

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/quill-lang/quill/internal/scanner"
)

// dumpTokens prints every token produced from s, one per line, until the
// scanner stops producing them.
func dumpTokens(w io.Writer, s *scanner.Scanner) error {
	for {
		ti, ok := s.Scan()
		if !ok {
			return nil
		}

		var err error
		if ti.Lit != "" {
			_, err = fmt.Fprintf(w, "%s %q\n", ti.Tok, ti.Lit)
		} else {
			_, err = fmt.Fprintln(w, ti.Tok.String())
		}
		if err != nil {
			return err
		}
	}
}

// listKeywords prints the Quill keyword set in lexical order.
func listKeywords(w io.Writer) error {
	toks := scanner.AllKeywords()

	kws := make([]string, 0, len(toks))
	for _, tok := range toks {
		kws = append(kws, tok.String())
	}
	slices.Sort(kws)

	for _, kw := range kws {
		if _, err := fmt.Fprintln(w, kw); err != nil {
			return err
		}
	}
	return nil
}
