package input

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"scrollpage/internal/ui/input/types"
)

// Handler is the one place keys become actions. Every key source (raw
// bytes, Bubble Tea messages, tcell events) goes through the keymap of the
// current mode.
type Handler struct {
	currentMode types.Mode
	keymaps     map[types.Mode]Keymap
	decoder     Decoder
	bindings    KeyBindings
}

// New creates a handler for the given mode
func New(mode types.Mode) *Handler {
	return &Handler{
		currentMode: mode,
		keymaps: map[types.Mode]Keymap{
			types.ModePager:    PagerKeymap(),
			types.ModeScroller: ScrollerKeymap(),
		},
		bindings: DefaultKeyBindings(),
	}
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Bindings returns the Bubble Tea key bindings
func (h *Handler) Bindings() KeyBindings {
	return h.bindings
}

// Keymap returns the keymap used for a mode
func (h *Handler) Keymap(mode types.Mode) Keymap {
	return h.keymaps[mode]
}

// RegisterKeymap replaces the keymap used for a mode
func (h *Handler) RegisterKeymap(mode types.Mode, km Keymap) {
	h.keymaps[mode] = km
}

// HandleKey maps a decoded key through the current keymap
func (h *Handler) HandleKey(k types.Key) types.Action {
	km := h.keymaps[h.currentMode]
	if km == nil {
		return types.ActionNone
	}
	return km.Action(k)
}

// Decode blocks for one key from r and maps it
func (h *Handler) Decode(r ByteReader) (types.Action, error) {
	k, err := h.decoder.ReadKey(r)
	if err != nil {
		return types.ActionNone, err
	}
	action := h.HandleKey(k)
	if action != types.ActionNone {
		log.Printf("input: %s -> %s", k, action)
	}
	return action, nil
}

// HandleTeaKey maps a Bubble Tea key message
func (h *Handler) HandleTeaKey(msg tea.KeyMsg) types.Action {
	return h.HandleKey(h.bindings.KeyFromTea(msg))
}

// HandleTcellKey maps a tcell key event
func (h *Handler) HandleTcellKey(ev *tcell.EventKey) types.Action {
	return h.HandleKey(KeyFromTcell(ev))
}

// ByteSource reads actions from a raw terminal byte stream
type ByteSource struct {
	handler *Handler
	reader  ByteReader
}

// NewByteSource binds a handler to a reader
func NewByteSource(h *Handler, r ByteReader) *ByteSource {
	return &ByteSource{handler: h, reader: r}
}

// NextAction implements types.ActionSource
func (s *ByteSource) NextAction() (types.Action, error) {
	return s.handler.Decode(s.reader)
}
