package views

import (
	"github.com/conclave-dev/conclave/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

type CommentNode struct {
	Comment   models.Comment `json:"comment"`
	Reactions Tally          `json:"reactions"`
	Children  []*CommentNode `json:"children"`
}

// BuildCommentTree reassembles the comment forest of one post from its flat
// snapshot. Children keep the fetch order, chronological by creation, and
// depth is unbounded. A comment whose declared parent is missing from the
// snapshot is skipped instead of failing the whole thread; the store
// guarantees parents exist before children reference them, so an orphan is
// an anomaly worth a log line but not an error.
func BuildCommentTree(comments []models.Comment, tallies map[uint]Tally) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	for _, comment := range comments {
		nodes[comment.ID] = &CommentNode{
			Comment:   comment,
			Reactions: tallies[comment.ID],
		}
	}

	var roots []*CommentNode
	for _, comment := range comments {
		node := nodes[comment.ID]
		if comment.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[*comment.ParentID]
		if !ok {
			log.Warn().
				Uint("comment", comment.ID).
				Uint("parent", *comment.ParentID).
				Uint("post", comment.PostID).
				Msg("Skipped orphan comment with missing parent.")
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	return roots
}
