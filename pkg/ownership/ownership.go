package ownership

import "vidtube.com/pkg/errno"

// Owned is any mutable entity that records the actor allowed to change it.
type Owned interface {
	GetOwnerID() int64
}

// Assert fails with AuthorizationFailedErr when the actor does not own the
// already-fetched entity. Pure predicate, no storage access.
func Assert(entity Owned, actorID int64) error {
	if entity.GetOwnerID() != actorID {
		return errno.AuthorizationFailedErr
	}
	return nil
}
