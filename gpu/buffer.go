package gpu

// Buffer holds uploaded vertex attribute floats or triangle indices
// Contents are copied on upload and never change afterwards
type Buffer struct {
	id      uint32
	floats  []float32
	indices []uint16
}

// ID returns the device-unique handle
func (b *Buffer) ID() uint32 {
	return b.id
}

// Len returns the number of stored elements (floats or indices)
func (b *Buffer) Len() int {
	if b.indices != nil {
		return len(b.indices)
	}
	return len(b.floats)
}

// CreateVertexBuffer uploads attribute data
func (d *Device) CreateVertexBuffer(data []float32) *Buffer {
	b := &Buffer{id: d.nextHandle(), floats: make([]float32, len(data))}
	copy(b.floats, data)
	d.stats.BufferBytes += len(data) * 4
	return b
}

// CreateIndexBuffer uploads a triangle index list
func (d *Device) CreateIndexBuffer(data []uint16) *Buffer {
	b := &Buffer{id: d.nextHandle(), indices: make([]uint16, len(data))}
	copy(b.indices, data)
	d.stats.BufferBytes += len(data) * 2
	return b
}
