package client

import (
	"context"
	"sync"

	"youtube-companion/domain/dto"
	"youtube-companion/domain/model"
)

// Workspace is the local view of one video: its details, comment threads
// and notes. State changes only after the server accepted the mutation.
type Workspace struct {
	api     *Client
	videoID string

	mu       sync.RWMutex
	video    *model.Video
	comments []model.Comment
	notes    []model.Note
}

func NewWorkspace(api *Client, videoID string) *Workspace {
	return &Workspace{api: api, videoID: videoID}
}

// Load fetches the video, its comments and its notes. The state is replaced
// only when all three succeed.
func (w *Workspace) Load(ctx context.Context) error {
	video, err := w.api.GetVideo(ctx, w.videoID)
	if err != nil {
		return err
	}
	comments, err := w.api.GetComments(ctx, w.videoID, 0)
	if err != nil {
		return err
	}
	notes, err := w.api.ListNotes(ctx, w.videoID)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.video = video
	w.comments = comments
	w.notes = notes
	return nil
}

func (w *Workspace) Video() *model.Video {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.video == nil {
		return nil
	}
	v := *w.video
	return &v
}

func (w *Workspace) Comments() []model.Comment {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.Comment, len(w.comments))
	for i, c := range w.comments {
		c.Replies = append([]model.Comment(nil), c.Replies...)
		out[i] = c
	}
	return out
}

func (w *Workspace) Notes() []model.Note {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]model.Note(nil), w.notes...)
}

func (w *Workspace) UpdateTitle(ctx context.Context, title string) error {
	return w.updateVideo(ctx, dto.VideoUpdateRequest{Title: &title})
}

func (w *Workspace) UpdateDescription(ctx context.Context, description string) error {
	return w.updateVideo(ctx, dto.VideoUpdateRequest{Description: &description})
}

func (w *Workspace) updateVideo(ctx context.Context, req dto.VideoUpdateRequest) error {
	updated, err := w.api.UpdateVideo(ctx, w.videoID, req)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.video == nil {
		w.video = updated
		return nil
	}
	if req.Title != nil {
		w.video.Title = updated.Title
	}
	if req.Description != nil {
		w.video.Description = updated.Description
	}
	return nil
}

// AddComment puts the new thread first, matching the provider's ordering.
func (w *Workspace) AddComment(ctx context.Context, text string) (*model.Comment, error) {
	comment, err := w.api.AddComment(ctx, w.videoID, text)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.comments = append([]model.Comment{*comment}, w.comments...)
	return comment, nil
}

func (w *Workspace) AddReply(ctx context.Context, parentID, text string) (*model.Comment, error) {
	reply, err := w.api.AddReply(ctx, parentID, text)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.comments {
		if w.comments[i].ID == parentID {
			w.comments[i].Replies = append(w.comments[i].Replies, *reply)
			break
		}
	}
	return reply, nil
}

// DeleteComment drops the thread together with its replies.
func (w *Workspace) DeleteComment(ctx context.Context, commentID string) error {
	if err := w.api.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.comments[:0]
	for _, c := range w.comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	w.comments = kept
	return nil
}

func (w *Workspace) DeleteReply(ctx context.Context, replyID string) error {
	if err := w.api.DeleteReply(ctx, replyID); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.comments {
		replies := w.comments[i].Replies[:0]
		for _, r := range w.comments[i].Replies {
			if r.ID != replyID {
				replies = append(replies, r)
			}
		}
		w.comments[i].Replies = replies
	}
	return nil
}

func (w *Workspace) CreateNote(ctx context.Context, req dto.NoteCreateRequest) (*model.Note, error) {
	note, err := w.api.CreateNote(ctx, w.videoID, req)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.notes = append([]model.Note{*note}, w.notes...)
	return note, nil
}

func (w *Workspace) UpdateNote(ctx context.Context, noteID int64, req dto.NoteUpdateRequest) (*model.Note, error) {
	note, err := w.api.UpdateNote(ctx, noteID, req)
	if err != nil {
		return nil, err
	}
	w.replaceNote(*note)
	return note, nil
}

// ToggleNote lets the server decide the new value.
func (w *Workspace) ToggleNote(ctx context.Context, noteID int64) (*model.Note, error) {
	note, err := w.api.ToggleNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	w.replaceNote(*note)
	return note, nil
}

func (w *Workspace) DeleteNote(ctx context.Context, noteID int64) error {
	if err := w.api.DeleteNote(ctx, noteID); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.notes[:0]
	for _, n := range w.notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	w.notes = kept
	return nil
}

func (w *Workspace) replaceNote(note model.Note) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.notes {
		if w.notes[i].ID == note.ID {
			w.notes[i] = note
			return
		}
	}
}
