// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub fans real-time events out to every connected websocket client.

# Running

The hub's run loop owns the client set; start it once:

	h := hub.New()
	go h.Run()

# Publishing

Ledger mutations publish named events:

	h.Publish(hub.EventVotesUpdate, hub.VotesUpdate{
		ImageID:     res.ImageID,
		NewCount:    res.NewCount,
		TotalVoters: res.TotalVoters,
	})

Publish never blocks the mutation path: events queue into a buffered channel
and are dropped with a warning when the queue is full. Delivery is
at-most-once with no replay; clients re-sync on reconnect via the
connect-time data:sync event.

# Events

	data:sync      full state, sent once per connection
	votes:update   {imageId, newCount, totalVoters}
	vote:log       one LogEntry (admin views consume it, others ignore it)
	data:update    {type: image:added|image:deleted, image/imageId, images, votes}
	status:update  {status}
	config:update  {siteName}
*/
package hub
