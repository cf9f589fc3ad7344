package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "prtgcli dev (build: dev)", Banner("prtgcli"))
}
