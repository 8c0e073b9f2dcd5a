package kinetic

// styleHandler is one Surface subscription on a StyleNode.
type styleHandler struct {
	id uint32
	fn func()
}

// StyleNode is an in-memory Target for hosts without a DOM-like node, and
// the standard test double. It implements Target, Surface, LayoutTarget,
// Flusher, and Detacher: presentation writes land in an internal style map
// (and are reflected back into the computed snapshot, like inline style),
// interaction events are injected with Trigger, and geometry is set
// explicitly.
type StyleNode struct {
	Name string

	style    map[string]string
	bounds   Rect
	flushes  int
	detached bool

	handlers map[EventType][]styleHandler
	nextID   uint32
}

// NewStyleNode creates an empty style node.
func NewStyleNode(name string) *StyleNode {
	return &StyleNode{
		Name:  name,
		style: make(map[string]string),
	}
}

// SetComputed seeds the computed value for a property.
func (n *StyleNode) SetComputed(property, value string) {
	n.style[property] = value
}

// Computed returns the current computed value for a property, or "".
func (n *StyleNode) Computed(property string) string {
	return n.style[property]
}

// Apply writes a presentation value. The write is reflected into the
// computed snapshot so later reads see the current visual state.
func (n *StyleNode) Apply(property, value string) {
	n.style[property] = value
}

// SetBounds sets the node's geometry snapshot.
func (n *StyleNode) SetBounds(r Rect) {
	n.bounds = r
}

// Bounds returns the node's geometry snapshot.
func (n *StyleNode) Bounds() Rect {
	return n.bounds
}

// Flush records a synchronous style flush.
func (n *StyleNode) Flush() {
	n.flushes++
}

// Flushes returns how many times Flush was called.
func (n *StyleNode) Flushes() int {
	return n.flushes
}

// Detach marks the node as removed from its host tree. Tasks animating a
// detached node are dropped on their next update.
func (n *StyleNode) Detach() {
	n.detached = true
}

// Detached reports whether the node was detached.
func (n *StyleNode) Detached() bool {
	return n.detached
}

// OnEvent subscribes fn to an interaction phase edge and returns a remove
// function for exactly that subscription.
func (n *StyleNode) OnEvent(event EventType, fn func()) (remove func()) {
	if n.handlers == nil {
		n.handlers = make(map[EventType][]styleHandler)
	}
	n.nextID++
	id := n.nextID
	n.handlers[event] = append(n.handlers[event], styleHandler{id: id, fn: fn})
	return func() {
		hs := n.handlers[event]
		for i := range hs {
			if hs[i].id == id {
				copy(hs[i:], hs[i+1:])
				hs[len(hs)-1] = styleHandler{}
				n.handlers[event] = hs[:len(hs)-1]
				return
			}
		}
	}
}

// Trigger injects an interaction phase edge, invoking every subscription
// for it in registration order.
func (n *StyleNode) Trigger(event EventType) {
	for _, h := range n.handlers[event] {
		h.fn()
	}
}

// handlerCount returns the number of live subscriptions across all edges.
func (n *StyleNode) handlerCount() int {
	total := 0
	for _, hs := range n.handlers {
		total += len(hs)
	}
	return total
}
