package javascript

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

var ErrSyntax = errors.New("javascript syntax error")

type Options struct {
	// Name is used as the source file name in error messages.
	Name   string
	Minify bool
}

// Transform parses source as a CommonJS module and returns it reprinted,
// minified when requested. Any parse error fails the transform.
func Transform(source []byte, opts Options) ([]byte, error) {
	result := api.Transform(string(source), api.TransformOptions{
		Loader:            api.LoaderJS,
		Format:            api.FormatCommonJS,
		Sourcefile:        opts.Name,
		MinifyWhitespace:  opts.Minify,
		MinifySyntax:      opts.Minify,
		MinifyIdentifiers: opts.Minify,
		Charset:           api.CharsetUTF8,
		LogLevel:          api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, m := range result.Errors {
			msgs = append(msgs, formatMessage(m))
		}
		return nil, errors.Wrap(ErrSyntax, strings.Join(msgs, "; "))
	}

	return result.Code, nil
}

// Check reports whether source parses.
func Check(source []byte, name string) error {
	_, err := Transform(source, Options{Name: name})
	return err
}

func formatMessage(m api.Message) string {
	if m.Location == nil {
		return m.Text
	}
	return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, m.Text)
}
