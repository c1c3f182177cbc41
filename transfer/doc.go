// Package transfer implements the resumable, chunked upload task that moves
// a local file to a remote share, with atomic publish, cooperative
// cancellation, and observer callbacks.
//
// # Overview
//
// The package provides three components:
//
//   - UploadTask: owns the chunked write loop, the resume decision, the
//     atomic-publish step, and cancellation cleanup
//   - Queue: a fixed worker pool executing one task run per worker
//   - Delegate: the observer interface receiving progress and terminal
//     notifications
//
// # Uploading a File
//
// Construct a task against any smb.Channel, start it, and observe it:
//
//	queue := transfer.NewQueue(2)
//	defer queue.Close()
//
//	task := transfer.NewUploadTask(channel,
//	    smb.Path{Share: "public", Dir: "reports"},
//	    "q3.pdf", "/tmp/q3.pdf",
//	    transfer.WithTempSuffix(".part"),
//	    transfer.WithQueue(queue),
//	    transfer.WithDelegate(observer),
//	)
//	if err := task.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	task.Wait()
//
// # Task States
//
// A task moves through a monotonic state machine:
//
//	StateIdle       // constructed, not yet executed
//	StateRunning    // execution unit in progress
//	StateCompleted  // all bytes written, publish succeeded (terminal)
//	StateCancelled  // cancellation requested (terminal)
//	StateFailed     // unrecoverable error (terminal)
//
// Once terminal, no further transition occurs; Cancel on a terminal task is
// a no-op.
//
// # Chunked Transfer
//
// Bytes move in fixed chunks of limits.WriteChunkSize (63488 bytes). The
// chunk size never adapts to throughput. One reusable buffer is allocated
// per run.
//
// # Resume and Atomic Publish
//
// With a temporary suffix configured, the file is written under
// fileName+suffix and renamed to fileName only after the last byte. The
// final name is therefore never observable mid-transfer. If an earlier run
// left a partial file under the temporary name, its size becomes the resume
// offset: the remote cursor and the local read position both seek there and
// the cumulative counter starts at that offset. Without a suffix every run
// starts at offset zero — there is no way to distinguish a finished file
// from a partial one.
//
// A failed run leaves the partial temporary file in place for a future
// resume; only cancellation deletes partial remote state.
//
// # Cancellation
//
// Cancellation is cooperative: the loop polls at chunk boundaries (before
// remote work begins, and after each write), so a stop request never races a
// live write. Cancel flips the state immediately and schedules a cleanup
// unit ordered strictly after the execution unit; cleanup best-effort
// deletes the temporary and final remote names, then delivers the terminal
// notification.
//
// # Notification Ordering
//
// Callbacks are dispatched through a per-task serial notifier, decoupled
// from the worker: progress values are strictly increasing, one per written
// chunk, and the single terminal callback (completed or failed) is delivered
// strictly after the last progress callback for the run.
//
// # Error Taxonomy
//
// Terminal failures are sentinel errors matched with errors.Is:
//
//	ErrCancelled           // run cancelled
//	ErrConnectionFailed    // share unreachable
//	ErrFileNotFound        // local source missing
//	ErrServerNotFound      // host resolution (reserved)
//	ErrDirectoryDownloaded // wrong target type (reserved)
//	ErrUploadFailed        // remote open/seek/write/publish failure
//
// # Deterministic Testing
//
// Speed and ETA accounting uses an injectable TimeProvider:
//
//	task := transfer.NewUploadTask(ch, dest, name, src,
//	    transfer.WithTimeProvider(mockTime))
package transfer
