package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// rendererPool reuses glamour renderers per option set. A TermRenderer is
// not safe for concurrent Render() calls, so instances are handed out
// through a sync.Pool instead of being shared.
type rendererPool struct {
	mu    sync.RWMutex
	pools map[string]*sync.Pool
}

var globalPool = &rendererPool{
	pools: make(map[string]*sync.Pool),
}

// Markdown renders markdown content for terminal display.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(escapeRawHTML(content))
}

// escapeRawHTML escapes '<' outside code fences and inline code spans.
// Glamour sanitizes anything that parses as raw HTML; escaping keeps
// HTML-looking text in the output as literal characters, since entity
// references are decoded back to text during rendering. Code regions are
// left untouched because they render verbatim.
func escapeRawHTML(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	inFence := false
	var fenceChar byte

	for i, line := range strings.Split(content, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}

		trimmed := strings.TrimLeft(line, " \t")
		if c, ok := fenceDelimiter(trimmed); ok {
			if !inFence {
				inFence = true
				fenceChar = c
			} else if c == fenceChar {
				inFence = false
			}
			out.WriteString(line)
			continue
		}

		if inFence {
			out.WriteString(line)
			continue
		}
		out.WriteString(escapeLine(line))
	}

	return out.String()
}

// fenceDelimiter reports whether a line opens or closes a fenced code
// block, and with which fence character.
func fenceDelimiter(line string) (byte, bool) {
	if strings.HasPrefix(line, "```") {
		return '`', true
	}
	if strings.HasPrefix(line, "~~~") {
		return '~', true
	}
	return 0, false
}

// escapeLine escapes '<' in one line, skipping inline code spans. A span
// closes only on a backtick run of the same length that opened it.
func escapeLine(line string) string {
	var out strings.Builder
	out.Grow(len(line))

	inCode := false
	codeDelim := 0

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '`' {
			run := 1
			for i+run < len(line) && line[i+run] == '`' {
				run++
			}
			out.WriteString(line[i : i+run])
			i += run - 1
			if inCode {
				if run == codeDelim {
					inCode = false
				}
			} else {
				inCode = true
				codeDelim = run
			}
			continue
		}
		if c == '<' && !inCode {
			out.WriteString("&lt;")
			continue
		}
		out.WriteByte(c)
	}

	return out.String()
}

// MarkdownOrPlain renders markdown, falling back to the raw text when the
// renderer fails. The reply is never dropped.
func MarkdownOrPlain(content string, opts Options) string {
	rendered, err := Markdown(content, opts)
	if err != nil {
		return content
	}
	return rendered
}

// cacheKey generates a unique key based on options.
func cacheKey(opts Options) string {
	return fmt.Sprintf("%s:%d:%t:%t",
		opts.Style,
		opts.Width,
		opts.EnableEmoji,
		opts.PreserveNewLines,
	)
}

func (p *rendererPool) getPool(opts Options) *sync.Pool {
	key := cacheKey(opts)

	p.mu.RLock()
	if pool, ok := p.pools[key]; ok {
		p.mu.RUnlock()
		return pool
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if pool, ok := p.pools[key]; ok {
		return pool
	}

	pool := &sync.Pool{
		New: func() interface{} {
			renderer, err := createRenderer(opts)
			if err != nil {
				return nil
			}
			return renderer
		},
	}
	p.pools[key] = pool
	return pool
}

func (p *rendererPool) get(opts Options) (*glamour.TermRenderer, error) {
	pool := p.getPool(opts)
	renderer := pool.Get()
	if renderer == nil {
		// Pool's New function failed, try creating directly
		return createRenderer(opts)
	}
	return renderer.(*glamour.TermRenderer), nil
}

func (p *rendererPool) put(opts Options, renderer *glamour.TermRenderer) {
	if renderer == nil {
		return
	}
	p.getPool(opts).Put(renderer)
}

func createRenderer(opts Options) (*glamour.TermRenderer, error) {
	rendererOpts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	}

	if opts.EnableEmoji {
		rendererOpts = append(rendererOpts, glamour.WithEmoji())
	}

	if opts.PreserveNewLines {
		rendererOpts = append(rendererOpts, glamour.WithPreservedNewLines())
	}

	return glamour.NewTermRenderer(rendererOpts...)
}

// ClearCache clears the renderer pools (useful for testing).
func ClearCache() {
	globalPool.mu.Lock()
	globalPool.pools = make(map[string]*sync.Pool)
	globalPool.mu.Unlock()
}

// CacheSize returns the number of unique pool configurations.
func CacheSize() int {
	globalPool.mu.RLock()
	defer globalPool.mu.RUnlock()
	return len(globalPool.pools)
}
