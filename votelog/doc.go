// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votelog keeps a bounded in-memory log of recent vote events.

The Recorder holds the newest MaxEntries (1000) entries, newest first;
older entries are evicted. Query pages through the log and re-resolves
image titles at read time:

	entries, total, hasMore := rec.Query(offset, limit, ledger.ImageTitle)

The log lives only in process memory and starts empty after a restart.
*/
package votelog
