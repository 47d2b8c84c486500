package javascript

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_Valid(t *testing.T) {
	src := []byte("module.exports = {\n  siteMetadata: { title: 'OpenSumi' }\n};\n")

	out, err := Transform(src, Options{Name: "gatsby-config.js"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "OpenSumi")

	min, err := Transform(src, Options{Name: "gatsby-config.js", Minify: true})
	require.NoError(t, err)
	assert.Less(t, len(min), len(src))
	assert.NotContains(t, string(min), "\n  ")
}

func TestTransform_SyntaxError(t *testing.T) {
	err := Check([]byte("module.exports = {\n  title: 'OpenSumi',,\n};"), "gatsby-config.js")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	assert.Contains(t, err.Error(), "gatsby-config.js:2")
}
