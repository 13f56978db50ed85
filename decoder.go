package qoi

// DecodeBuffer reconstructs a pixel buffer from a complete QOI byte
// stream. targetChannels selects the output layout: 0 infers it from the
// header, 3 or 4 force that many channels per pixel regardless of what
// the stream was encoded with. The returned descriptor always reports the
// header's own channel count, not targetChannels.
func DecodeBuffer(data []byte, targetChannels int) ([]byte, Descriptor, error) {
	if len(data) < headerSize+len(terminator) {
		return nil, Descriptor{}, ErrInvalidArgument
	}
	if targetChannels != 0 && targetChannels != 3 && targetChannels != 4 {
		return nil, Descriptor{}, ErrInvalidArgument
	}

	m, cursor := readBE32(data, 0)
	if m != magic {
		return nil, Descriptor{}, ErrInvalidArgument
	}
	width, cursor2 := readBE32(data, cursor)
	height, cursor3 := readBE32(data, cursor2)
	cursor = cursor3
	channels := data[cursor]
	colorspace := data[cursor+1]
	cursor += 2

	d := Descriptor{Width: width, Height: height, Channels: channels, Colorspace: Colorspace(colorspace)}
	if err := d.validate(); err != nil {
		return nil, Descriptor{}, err
	}

	outChannels := targetChannels
	if outChannels == 0 {
		outChannels = int(channels)
	}

	pixelCount := int(width) * int(height)
	out, err := allocate(pixelCount * outChannels)
	if err != nil {
		return nil, Descriptor{}, err
	}

	chunksEnd := len(data) - len(terminator)

	var table [64]Pixel
	curr := Pixel{0, 0, 0, 255}
	run := 0

	for i := 0; i < pixelCount; i++ {
		if run > 0 {
			run--
		} else if cursor < chunksEnd {
			b1 := data[cursor]
			cursor++
			switch {
			case b1 == opRGBA:
				curr = Pixel{R: data[cursor], G: data[cursor+1], B: data[cursor+2], A: data[cursor+3]}
				cursor += 4
				table[hash(curr)] = curr
			case b1 == opRGB:
				curr = Pixel{R: data[cursor], G: data[cursor+1], B: data[cursor+2], A: curr.A}
				cursor += 3
				table[hash(curr)] = curr
			case b1&tagMask == opIndex:
				curr = table[b1&0x3F]
			case b1&tagMask == opDiff:
				curr.R += ((b1 >> 4) & 3) - 2
				curr.G += ((b1 >> 2) & 3) - 2
				curr.B += (b1 & 3) - 2
				table[hash(curr)] = curr
			case b1&tagMask == opLuma:
				b2 := data[cursor]
				cursor++
				dg := (b1 & 0x3F) - 32
				curr.R += dg + ((b2>>4)&0x0F) - 8
				curr.G += dg
				curr.B += dg + (b2 & 0x0F) - 8
				table[hash(curr)] = curr
			case b1&tagMask == opRun:
				run = int(b1 & 0x3F)
			}
		}

		off := i * outChannels
		out[off] = curr.R
		out[off+1] = curr.G
		out[off+2] = curr.B
		if outChannels == 4 {
			out[off+3] = curr.A
		}
	}

	return out, d, nil
}
