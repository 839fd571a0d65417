package procevent

import "golang.org/x/sys/unix"

// NOTE_EXIT delivers the wait status in the event data on FreeBSD.
const procNoteFlags = unix.NOTE_EXIT | unix.NOTE_EXEC | unix.NOTE_FORK | unix.NOTE_TRACK
