// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger holds the mutable voting state and enforces its invariants.

# The Ledger

The Ledger is the only component that touches the snapshot after startup.
All mutations serialize through one mutex and commit to the store before
returning, so a successful call means the change is on disk:

	l, err := ledger.Load(st)
	result, err := l.ToggleVote(visitorID, imageID)

If the durable save fails, the in-memory change is rolled back and the error
returned. Memory and disk never diverge.

# Invariants

At every return from a Ledger method:

  - every vote count belongs to an existing image (deletes scrub counts and
    user vote sets)
  - no user's vote set contains duplicates or more than MaxVotesPerUser IDs
  - counts are never negative
  - the sum of all counts equals the sum of all user vote set sizes

# Errors

Sentinel errors describe every refusal:

	ErrVotingClosed       status is closed
	ErrImageNotFound      unknown image ID
	ErrVoteLimitExceeded  user already holds MaxVotesPerUser votes
	ErrDuplicateURL       an image with that URL already exists
	ErrInvalidSiteName    empty site name
	ErrInvalidStatus      status other than open/closed

# Ranking

VoteResult.Rank and Stats.TopImages sort by count descending with ties
broken by original insertion order (stable sort), so equal counts never
shuffle between calls.
*/
package ledger
