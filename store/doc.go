// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the whole application state as one JSON document.

# Loading

Load reads the document from the configured path:

	st := store.New("data.json")
	snap, err := st.Load()

If the file does not exist, Load writes the default document and returns it,
so the file always exists after the first successful Load. Documents written
by older versions are merged over the defaults field-by-field, so upgrades
never lose data and always gain new fields. A file that exists but does not
parse is a fatal error: silently replacing a corrupt file would destroy votes.

# Saving

Save replaces the document atomically:

	err := st.Save(snap)

The new document is written to <path>.tmp, fsynced, and renamed over the
canonical path in one step. A crash at any point leaves either the old
document or the new one, never a partial write.
*/
package store
