package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentCanDeleteBy(t *testing.T) {
	cm := CommentModel{CommentID: 5, CommentUserID: 1, CommentPostID: 10}

	assert.True(t, cm.CanDeleteBy(1), "penulis boleh menghapus komentarnya")
	assert.False(t, cm.CanDeleteBy(2), "user lain tidak boleh menghapus")
}
