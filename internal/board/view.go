// Package board maps reports to a render-independent view model and keeps
// the displayed list in order (newest on top).
package board

import (
	"fmt"
	"time"

	"reportboard/client/internal/config"
	"reportboard/client/internal/models"
)

// ActionKind identifies a user interaction bound to a view.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionLike
)

func (k ActionKind) String() string {
	switch k {
	case ActionLike:
		return "like"
	default:
		return "none"
	}
}

// Action is a declarative event binding. Renderers attach it to a control and
// hand it back to the controller when the control is used.
type Action struct {
	Kind     ActionKind
	ReportID models.ReportID
}

// ReportView is the display node of one report. Text fields are copied
// verbatim and must be rendered as text, never as markup.
type ReportView struct {
	ID        models.ReportID
	Nickname  string
	Room      string
	Content   string
	Likes     int
	LikeLabel string
	Like      Action

	// InsertedAt is when the view was put on the board; zero for detached views.
	InsertedAt time.Time
}

// Build maps a report to its view.
func Build(r models.Report) ReportView {
	return ReportView{
		ID:        r.ID,
		Nickname:  r.Nickname,
		Room:      r.Room,
		Content:   r.Content,
		Likes:     r.Likes,
		LikeLabel: LikeLabel(r.Likes),
		Like:      Action{Kind: ActionLike, ReportID: r.ID},
	}
}

// LikeLabel formats a like count the way the like control shows it.
func LikeLabel(likes int) string {
	return fmt.Sprintf("❤ %d", likes)
}

// Entering reports whether the view is still in its highlight period at now.
func (v ReportView) Entering(now time.Time) bool {
	if v.InsertedAt.IsZero() {
		return false
	}
	return now.Sub(v.InsertedAt) < config.EnteringDuration
}

func (v *ReportView) setLikes(n int) {
	v.Likes = n
	v.LikeLabel = LikeLabel(n)
}
