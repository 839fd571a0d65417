package procevent

import "golang.org/x/sys/unix"

// Darwin only fills the event data with the wait status when
// NOTE_EXITSTATUS is requested alongside NOTE_EXIT.
const procNoteFlags = unix.NOTE_EXIT | unix.NOTE_EXITSTATUS | unix.NOTE_EXEC | unix.NOTE_FORK | unix.NOTE_TRACK
