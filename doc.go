// Package smbshare implements a client for moving local files onto remote
// shares over a stateful, connection-oriented remote-file channel.
//
// The package provides the main API facade that integrates the subsystems of
// the implementation: the chunked, resumable upload task, the transfer queue,
// the remote channel surface, and the observer callback plumbing.
//
// # Getting Started
//
// Create a client over a channel and upload a file:
//
//	options := smbshare.NewOptions()
//	options.Workers = 4
//
//	client, err := smbshare.New(channel, options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Kill()
//
//	task, err := client.Upload("/tmp/q3.pdf",
//	    smb.Path{Share: "public", Dir: "reports"}, "q3.pdf", observer)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	task.Wait()
//
// # Core Types
//
//   - [Client]: API facade binding a channel to a transfer queue
//   - [Options]: Configuration for creating a new Client
//   - transfer.UploadTask: a single resumable chunked upload
//   - smb.Channel: the session-layer capability uploads run against
//
// # Transfer Semantics
//
// Uploads move bytes in fixed 62 KiB chunks, stage the file under a
// temporary name, and publish it with an atomic rename only after the last
// byte — the final name is never observable mid-transfer. A run interrupted
// by a failure leaves its partial file under the temporary name so the next
// run resumes where it left off. Cancellation is cooperative, takes effect
// at chunk boundaries, and best-effort deletes the partial remote state.
// See the transfer package for the full state machine and ordering
// guarantees.
//
// # Channel Backends
//
// Any implementation of smb.Channel works as a backend. The billyshare
// package maps share names onto go-billy filesystems, serving a local
// directory (osfs) or an in-memory tree (memfs) as a stand-in share for
// tooling and tests.
package smbshare
