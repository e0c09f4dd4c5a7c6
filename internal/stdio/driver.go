// Package stdio pumps framed tool requests from standard input through the
// dispatcher and writes response envelopes to standard output. Requests are
// executed by a worker pool, but responses are always emitted in request
// order.
package stdio

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/saharshpoddar/learning-gateway/internal/dispatch"
)

// Request is one inbound frame. Unknown fields are ignored.
type Request struct {
	Tool      string            `json:"tool"`
	Arguments map[string]string `json:"arguments"`
}

// Dispatcher is the slice of the tool dispatcher the driver needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, tool string, args map[string]string) dispatch.ToolResponse
}

const defaultWorkers = 4

// maxFrameBytes bounds a single request line.
const maxFrameBytes = 1 << 20

// Driver runs the read-dispatch-write pump.
type Driver struct {
	dispatcher Dispatcher
	workers    int
}

// NewDriver builds a driver with the default worker pool size.
func NewDriver(dispatcher Dispatcher) *Driver {
	return &Driver{dispatcher: dispatcher, workers: defaultWorkers}
}

type job struct {
	seq  uint64
	line string
}

type outcome struct {
	seq      uint64
	response dispatch.ToolResponse
}

// Run pumps frames until EOF on in or the context is cancelled. Responses
// appear on out in the same order their requests arrived. Malformed input
// produces a protocol-error envelope, never a crash. At EOF the dispatches
// still in flight are cancelled; each still writes its envelope.
func (d *Driver) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	jobs := make(chan job)
	outcomes := make(chan outcome)

	// Dispatches run under workCtx, which the reader cancels when input ends.
	workCtx, cancelWork := context.WithCancel(ctx)
	defer cancelWork()

	// Reader: assigns monotonic sequence numbers.
	readErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), maxFrameBytes)
		var seq uint64
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case jobs <- job{seq: seq, line: line}:
				seq++
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		cancelWork()
		readErr <- scanner.Err()
	}()

	// Workers: parse and dispatch.
	var workerGroup errgroup.Group
	for i := 0; i < d.workers; i++ {
		workerGroup.Go(func() error {
			for j := range jobs {
				response := d.process(workCtx, j.line)
				select {
				case outcomes <- outcome{seq: j.seq, response: response}:
				case <-ctx.Done():
					return nil
				}
			}
			return nil
		})
	}
	go func() {
		_ = workerGroup.Wait()
		close(outcomes)
	}()

	// Writer: drain in sequence order.
	var writeErr error
	var writerWG sync.WaitGroup
	writerWG.Add(1)
	go func() {
		defer writerWG.Done()
		encoder := json.NewEncoder(out)
		pending := make(map[uint64]dispatch.ToolResponse)
		var next uint64
		for oc := range outcomes {
			pending[oc.seq] = oc.response
			for {
				response, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := encoder.Encode(response); err != nil && writeErr == nil {
					writeErr = fmt.Errorf("write response: %w", err)
				}
				next++
			}
		}
	}()

	writerWG.Wait()
	if err := <-readErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if writeErr != nil {
		return writeErr
	}
	log.Debug().Msg("Stdio driver drained")
	return nil
}

// process turns one frame into an envelope. Parse failures never escape as
// errors.
func (d *Driver) process(ctx context.Context, line string) dispatch.ToolResponse {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return dispatch.ToolResponse{
			Product: dispatch.ProductSystem,
			Success: false,
			Error:   fmt.Sprintf("system: ProtocolError: malformed request frame: %v", err),
		}
	}
	if strings.TrimSpace(req.Tool) == "" {
		return dispatch.ToolResponse{
			Product: dispatch.ProductSystem,
			Success: false,
			Error:   "system: ProtocolError: request frame has no tool name",
		}
	}
	return d.dispatcher.Dispatch(ctx, req.Tool, req.Arguments)
}
