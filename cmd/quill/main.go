package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/quill-lang/quill/internal/scanner"
)

func main() {
	app := cli.NewApp()
	app.Name = "quill"
	app.Usage = "Tokenizer for the Quill language"
	app.UsageText = "quill [command] [file]"
	app.EnableBashCompletion = true

	app.Commands = []*cli.Command{
		{
			Name:  "keywords",
			Usage: "List the Quill keyword set",
			Action: func(c *cli.Context) error {
				return listKeywords(c.App.Writer)
			},
		},
	}

	// Root command: tokenize a source file and print each token.
	app.Action = func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return errors.New("source file expected")
		}

		s, err := scanner.NewFromFile(path)
		if err != nil {
			return err
		}

		return dumpTokens(c.App.Writer, s)
	}

	err := app.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stdout, "error: %v\n", err)
		os.Exit(2)
	}
}
