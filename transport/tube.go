/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package transport

import (
	"bufio"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"

	"github.com/nixrecon/micronix/config"
)

// promptPattern matches a typical shell prompt trailer ("user@host:~$ ",
// "# ", "> ") so it can be stripped from a line before echo comparison.
var promptPattern = regexp.MustCompile(`^.*?[$#>]\s*`)

// Tube is a line-oriented Transport over a raw bound-listener or
// connect-back shell connection. Every command is framed with a random
// sentinel so Send knows where the command's output ends; the echoed
// command line and the trailing shell prompt are both stripped from the
// captured output before it is handed to the extractor's parsers.
type Tube struct {
	conn   net.Conn
	reader *bufio.Reader
	logger *zap.Logger
}

// NewTube wraps an already-connected net.Conn (from a Listen or a
// connect-back Dial) as a Transport.
func NewTube(conn net.Conn, logger *zap.Logger) *Tube {
	return &Tube{conn: conn, reader: bufio.NewReader(conn), logger: logger}
}

func (t *Tube) Send(ctx context.Context, cmd string) (CommandResult, error) {
	sentinel, err := randomSentinel()
	if err != nil {
		return CommandResult{}, fmt.Errorf("generate sentinel: %w", err)
	}

	framed := fmt.Sprintf("%s; echo %s\n", cmd, sentinel)
	issued := strings.TrimSuffix(framed, "\n")
	if _, err := io.WriteString(t.conn, framed); err != nil {
		return CommandResult{}, fmt.Errorf("send command: %w", err)
	}

	var out []string
	for {
		select {
		case <-ctx.Done():
			return CommandResult{}, ctx.Err()
		default:
		}

		raw, err := t.reader.ReadString('\n')
		if err != nil && raw == "" {
			return CommandResult{}, fmt.Errorf("read output: %w", err)
		}
		line := stripANSI(strings.TrimRight(raw, "\r\n"))

		// The echoed command line also carries the sentinel, after "echo ".
		if strings.Contains(line, sentinel) && !strings.Contains(line, "echo "+sentinel) {
			break
		}
		if stripped, ok := stripEcho(line, issued); ok {
			if stripped == "" {
				continue
			}
			line = stripped
		}
		out = append(out, line)

		if err != nil {
			break
		}
	}

	t.logger.Debug("tube send", zap.String("cmd", cmd), zap.Int("lines", len(out)))
	return CommandResult{Stdout: out, ExitCode: 0}, nil
}

// stripEcho removes a leading shell prompt and/or the echoed command line
// from line, if line is recognizably either of those relative to cmd.
// Returns (remainder, true) when something was stripped.
func stripEcho(line, cmd string) (string, bool) {
	candidate := line
	if loc := promptPattern.FindStringIndex(candidate); loc != nil && loc[0] == 0 {
		candidate = candidate[loc[1]:]
	}
	if echoRatio(candidate, cmd) >= config.EchoStripRatio {
		return "", true
	}
	return line, false
}

// echoRatio returns the Levenshtein similarity ratio of a and b in [0,1].
func echoRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.Distance(a, b, nil)
	return 1 - float64(dist)/float64(maxLen)
}

func randomSentinel() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "MICRONIX_" + hex.EncodeToString(buf), nil
}

func (t *Tube) Upload(ctx context.Context, local, remote string) error {
	return fmt.Errorf("upload not supported over a line-oriented tube")
}

func (t *Tube) Download(ctx context.Context, remote, local string) error {
	return fmt.Errorf("download not supported over a line-oriented tube")
}

func (t *Tube) Close() error {
	return t.conn.Close()
}
