package attachments

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNoOptions = errors.New("poll needs at least one option")

// Composer owns the attachment bundle of one post being written. It is the
// only writer of its bundle; the gallery reads a copy and sends removal
// requests back keyed by (collection, id).
type Composer struct {
	mu     sync.Mutex
	bundle Bundle
	now    func() time.Time
}

func NewComposer() *Composer {
	return &Composer{now: time.Now}
}

// Bundle returns a copy safe to aggregate and render.
func (c *Composer) Bundle() Bundle {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := Bundle{
		Images:    append([]Image(nil), c.bundle.Images...),
		Videos:    append([]Video(nil), c.bundle.Videos...),
		Documents: append([]Document(nil), c.bundle.Documents...),
		Polls:     append([]Poll(nil), c.bundle.Polls...),
	}
	return b
}

func (c *Composer) AddImage(url, name string) Image {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := Image{Id: c.mintId("img"), Url: url, Name: name}
	c.bundle.Images = append(c.bundle.Images, img)
	return img
}

func (c *Composer) AddVideo(url, name string) Video {
	c.mu.Lock()
	defer c.mu.Unlock()
	vid := Video{Id: c.mintId("vid"), Url: url, Name: name}
	c.bundle.Videos = append(c.bundle.Videos, vid)
	return vid
}

func (c *Composer) AddDocument(name string, sizeBytes int64) Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc := Document{Id: c.mintId("doc"), Name: name, SizeBytes: sizeBytes}
	c.bundle.Documents = append(c.bundle.Documents, doc)
	return doc
}

func (c *Composer) AddPoll(question string, options []string) (Poll, error) {
	if len(options) == 0 {
		return Poll{}, ErrNoOptions
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	millis := c.now().UnixMilli()
	opts := make([]Option, len(options))
	for i, text := range options {
		opts[i] = Option{Id: fmt.Sprintf("opt-%d-%d", millis, i), Text: text}
	}
	poll := Poll{Id: c.mintId("poll"), Question: question, Options: opts}
	c.bundle.Polls = append(c.bundle.Polls, poll)
	return poll, nil
}

// Remove deletes the item identified by the (collection, id) pair. Ids may
// collide across collections, so the collection name is part of the key.
func (c *Composer) Remove(collection, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch collection {
	case "images":
		return removeById(&c.bundle.Images, id, func(a Image) string { return a.Id })
	case "videos":
		return removeById(&c.bundle.Videos, id, func(a Video) string { return a.Id })
	case "documents":
		return removeById(&c.bundle.Documents, id, func(a Document) string { return a.Id })
	case "polls":
		return removeById(&c.bundle.Polls, id, func(a Poll) string { return a.Id })
	}
	return false
}

// mintId follows the platform id shape "<prefix>-<epoch-millis>" that the
// recency sort relies on. Callers must hold c.mu.
func (c *Composer) mintId(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, c.now().UnixMilli())
}

func removeById[T any](items *[]T, id string, idOf func(T) string) bool {
	for i, item := range *items {
		if idOf(item) == id {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return true
		}
	}
	return false
}
