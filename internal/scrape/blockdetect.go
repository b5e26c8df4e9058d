package scrape

import (
	"bytes"
	"net/http"
	"strings"
)

// BlockType describes the kind of block detected.
type BlockType string

const (
	BlockNone       BlockType = ""
	BlockCloudflare BlockType = "cloudflare"
	BlockCaptcha    BlockType = "captcha"
	BlockJSShell    BlockType = "js_shell"
)

// jsShellMaxBytes bounds the body size treated as a script-only shell.
const jsShellMaxBytes = 2000

// Block is the outcome of DetectBlock. Marker names the signal that matched.
type Block struct {
	Type   BlockType
	Marker string
}

// Blocked reports whether any anti-bot signal matched.
func (b Block) Blocked() bool { return b.Type != BlockNone }

type bodyMarker struct {
	all  []string
	kind BlockType
}

// Checked in order; the first marker whose substrings all appear wins.
var bodyMarkers = []bodyMarker{
	{all: []string{"checking your browser"}, kind: BlockCloudflare},
	{all: []string{"cf-browser-verification"}, kind: BlockCloudflare},
	{all: []string{"cloudflare", "challenge"}, kind: BlockCloudflare},
	{all: []string{"captcha"}, kind: BlockCaptcha},
}

var shellMarkers = []bodyMarker{
	{all: []string{"<noscript", "javascript"}, kind: BlockJSShell},
	{all: []string{`meta http-equiv="refresh"`}, kind: BlockJSShell},
}

// DetectBlock inspects a fetched page for signs of anti-bot protection.
// Shell markers only count on small bodies.
func DetectBlock(statusCode int, header http.Header, body []byte) Block {
	if statusCode == http.StatusForbidden || statusCode == http.StatusServiceUnavailable {
		if m := cloudflareHeader(header); m != "" {
			return Block{Type: BlockCloudflare, Marker: m}
		}
	}

	lower := bytes.ToLower(body)
	if b, ok := matchMarkers(lower, bodyMarkers); ok {
		return b
	}
	if len(body) < jsShellMaxBytes {
		if b, ok := matchMarkers(lower, shellMarkers); ok {
			return b
		}
	}
	return Block{}
}

func cloudflareHeader(h http.Header) string {
	for _, key := range []string{"Cf-Ray", "Cf-Cache-Status"} {
		if h.Get(key) != "" {
			return "header:" + strings.ToLower(key)
		}
	}
	if strings.EqualFold(h.Get("Server"), "cloudflare") {
		return "header:server"
	}
	return ""
}

func matchMarkers(lower []byte, markers []bodyMarker) (Block, bool) {
	for _, m := range markers {
		hit := true
		for _, s := range m.all {
			if !bytes.Contains(lower, []byte(s)) {
				hit = false
				break
			}
		}
		if hit {
			return Block{Type: m.kind, Marker: strings.Join(m.all, "+")}, true
		}
	}
	return Block{}, false
}
