//go:build !ocr

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubNew(t *testing.T) {
	client, err := New("eng+deu")
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.Nil(t, client)
}

func TestStubRecognize(t *testing.T) {
	var client Client
	res, err := client.Recognize("word/media/image1.png", []byte{0x89, 'P', 'N', 'G'})
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.Zero(t, res)
	assert.Nil(t, client.Languages())
}

func TestStubCloseOnNil(t *testing.T) {
	var client *Client
	assert.NoError(t, client.Close())
}
