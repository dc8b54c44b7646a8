package blog

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// LinkPreviewArgs asks the worker to fill the missing logo and description of
// a friend link from the metadata of its site.
type LinkPreviewArgs struct {
	// FriendLinkID is unique so a link never has two preview jobs at once.
	FriendLinkID int64 `json:"friendLinkId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the preview worker.
func (LinkPreviewArgs) Kind() string { return "FriendLinkPreviewJob" }

// InsertOpts runs the preview once. A site that cannot be read now is not
// retried; the admin can still edit the link by hand.
func (LinkPreviewArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
