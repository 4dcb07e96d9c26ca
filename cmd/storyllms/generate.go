package main

import (
	"fmt"

	"github.com/fwojciec/storyllms"
	"github.com/fwojciec/storyllms/generate"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	generator := &generate.Generator{
		Extractor: deps.Extractor,
		Pages:     deps.Pages,
		Converter: deps.Converter,
		Docs:      deps.Docs,
		Logger:    deps.Logger,
	}

	result, err := generator.Generate(deps.Ctx, c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storyllms.ErrorMessage(err))
		switch storyllms.ErrorCode(err) {
		case storyllms.ENOTFOUND, storyllms.EUNSUPPORTED:
			fmt.Fprintln(deps.Stderr, "Hint: point storyllms at a built Storybook output directory (the one that contains iframe.html)")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documented %d entries (%d prose pages) in %d files\n",
		result.Entries, result.ProsePages, result.Files)
	if result.EmptyPages > 0 {
		fmt.Fprintf(deps.Stdout, "  %d prose pages had no content\n", result.EmptyPages)
	}
	fmt.Fprintf(deps.Stdout, "Fingerprint: %s\n", result.Fingerprint)
	return nil
}
