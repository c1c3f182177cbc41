package smbshare

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/smbshare/smb"
	"github.com/opd-ai/smbshare/transfer"
)

// Options configures a new Client.
type Options struct {
	// Workers is the number of transfer executions that can run
	// concurrently. Values below 1 are clamped to 1.
	Workers int

	// TempSuffix is the staging suffix applied to every upload the client
	// creates: files are written under name+TempSuffix and renamed to name
	// on success. Empty disables staging, which also disables resume.
	TempSuffix string
}

// NewOptions creates a default Options configuration: two workers and
// ".part" staging.
func NewOptions() *Options {
	return &Options{
		Workers:    2,
		TempSuffix: ".part",
	}
}

// Client binds a remote channel to a transfer queue and constructs upload
// tasks against it.
type Client struct {
	channel smb.Channel
	queue   *transfer.Queue
	options *Options
}

// New creates a Client over the given channel.
func New(channel smb.Channel, options *Options) (*Client, error) {
	if channel == nil {
		return nil, errors.New("channel must not be nil")
	}
	if options == nil {
		options = NewOptions()
	}

	logrus.WithFields(logrus.Fields{
		"function":    "New",
		"workers":     options.Workers,
		"temp_suffix": options.TempSuffix,
	}).Info("Creating smbshare client")

	return &Client{
		channel: channel,
		queue:   transfer.NewQueue(options.Workers),
		options: options,
	}, nil
}

// Upload creates an upload task for the local file at sourcePath, targeting
// fileName inside dest, and submits it for execution. The returned task is
// already started; observe it through the delegate or task.Wait.
func (c *Client) Upload(sourcePath string, dest smb.Path, fileName string, delegate transfer.Delegate) (*transfer.UploadTask, error) {
	task := transfer.NewUploadTask(c.channel, dest, fileName, sourcePath,
		transfer.WithTempSuffix(c.options.TempSuffix),
		transfer.WithQueue(c.queue),
		transfer.WithDelegate(delegate),
	)
	if err := task.Start(); err != nil {
		return nil, err
	}
	return task, nil
}

// Kill shuts the client down, waiting for in-flight transfers to finish.
// Tasks not yet picked up by a worker still run before Kill returns.
func (c *Client) Kill() {
	c.queue.Close()

	logrus.WithFields(logrus.Fields{
		"function": "Kill",
	}).Info("smbshare client shut down")
}
