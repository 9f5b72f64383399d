package quill

// IDAllocator hands out node identifiers. Identifiers double as pick colors,
// so they must fit in 24 bits and never be 0 (the background).
//
// A stride above 1 spaces ids apart so that blended edge pixels in the pick
// buffer are less likely to decode to a neighboring id.
type IDAllocator struct {
	next   uint32
	stride uint32
}

// NewIDAllocator returns an allocator whose first id is start. A start of 0
// is treated as 1 and a stride of 0 as 1.
func NewIDAllocator(start, stride uint32) *IDAllocator {
	if start == 0 {
		start = 1
	}
	if stride == 0 {
		stride = 1
	}
	return &IDAllocator{next: start, stride: stride}
}

// Next returns a fresh id. Panics once the 24-bit pick space is exhausted.
func (a *IDAllocator) Next() uint32 {
	id := a.next
	if id == 0 || id > MaxPickID {
		panic("quill: pick id space exhausted")
	}
	a.next += a.stride
	return id
}

// NewShape creates a shape node with an empty command buffer.
func (a *IDAllocator) NewShape(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Graphics: NewGraphics()}
	nodeDefaults(n, a.Next())
	return n
}

// NewContainer creates a shape node intended only to group children.
func (a *IDAllocator) NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeShape}
	nodeDefaults(n, a.Next())
	return n
}

// NewText creates a text node. Text nodes are not pickable by default.
func (a *IDAllocator) NewText(name, content string, font *TTFFont) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{
			Content: content,
			Font:    font,
			Color:   ColorBlack,
		},
	}
	nodeDefaults(n, a.Next())
	n.Pickable = false
	return n
}
