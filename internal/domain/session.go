package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Channel names a logical interactive session
type Channel string

const (
	// ChannelCommands runs one-shot clarinet invocations
	ChannelCommands Channel = "commands"
	// ChannelConsole hosts the long-lived clarinet console
	ChannelConsole Channel = "console"
)

// DisplayName is the fixed terminal name the session is looked up by
func (c Channel) DisplayName() string {
	switch c {
	case ChannelCommands:
		return "Clarity Commands"
	case ChannelConsole:
		return "Clarity Console"
	default:
		return "Clarity " + strings.ToUpper(string(c[:1])) + string(c[1:])
	}
}

// ParseChannel validates a channel name
func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelCommands, ChannelConsole:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel %q (expected commands or console)", s)
}

// StagedTestFile is a scratch file holding a synthesized test invocation
type StagedTestFile struct {
	Path    string
	Content string
}

// StagedFileName returns temp_test_<function>_<epochMillis>.<ext>
func StagedFileName(functionName string, at time.Time, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("temp_test_%s_%d.%s", functionName, at.UnixMilli(), ext)
}

// ContractName derives the contract name from a .clar file path
func ContractName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".clar")
}

// ContractSource is the text of one contract file
type ContractSource struct {
	Path string
	Text string
}
