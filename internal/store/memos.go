package store

import (
	"iter"

	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
)

// MemoBoard keeps free-text memos keyed by title. Posting an existing title
// replaces the content wholesale; memos are never deleted.
type MemoBoard struct {
	memos  map[string]string
	order  []string
	events *zap.Logger
}

// NewMemoBoard builds an empty memo board.
func NewMemoBoard(events *zap.Logger) *MemoBoard {
	if events == nil {
		events = zap.NewNop()
	}
	return &MemoBoard{
		memos:  make(map[string]string),
		events: events,
	}
}

// Post upserts a memo. There is no existence check: a repeated title keeps
// its original board position and takes the new content.
func (b *MemoBoard) Post(title, content string) {
	if _, ok := b.memos[title]; !ok {
		b.order = append(b.order, title)
	}
	b.memos[title] = content

	b.events.Info("posted memo", zap.String("title", title))
}

// Get returns the content posted under title, if any.
func (b *MemoBoard) Get(title string) (string, bool) {
	content, ok := b.memos[title]
	return content, ok
}

// Len reports the number of memos on the board.
func (b *MemoBoard) Len() int {
	return len(b.memos)
}

// All yields memos in first-post order; the sequence restarts on every range.
func (b *MemoBoard) All() iter.Seq[models.Memo] {
	return func(yield func(models.Memo) bool) {
		for _, title := range b.order {
			if !yield(models.Memo{Title: title, Content: b.memos[title]}) {
				return
			}
		}
	}
}
