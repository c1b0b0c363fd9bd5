package texdecode

// decodeColourMap expands a block's two RGB565 endpoints into the 4-entry
// palette. With c0 > c1 the two derived entries are the 2/3+1/3 and
// 1/3+2/3 interpolants; otherwise entry 2 is the midpoint and entry 3 is
// black (the DXT1 1-bit-alpha convention).
func decodeColourMap(data []byte, loc int) [4][3]float32 {
	colour0 := uint32(data[loc]) | uint32(data[loc+1])<<8
	colour1 := uint32(data[loc+2]) | uint32(data[loc+3])<<8

	var c [4][3]float32
	c[0][0] = float32((colour0 >> 8) & 0xF8)
	c[0][1] = float32((colour0 >> 3) & 0xFC)
	c[0][2] = float32((colour0 << 3) & 0xF8)

	c[1][0] = float32((colour1 >> 8) & 0xF8)
	c[1][1] = float32((colour1 >> 3) & 0xFC)
	c[1][2] = float32((colour1 << 3) & 0xF8)

	if colour0 > colour1 {
		for i := 0; i < 3; i++ {
			c[2][i] = (2*c[0][i] + c[1][i]) / 765
			c[3][i] = (c[0][i] + 2*c[1][i]) / 765
		}
	} else {
		for i := 0; i < 3; i++ {
			c[2][i] = (c[0][i] + c[1][i]) / 510
			c[3][i] = 0
		}
	}

	for i := 0; i < 3; i++ {
		c[0][i] /= 255
		c[1][i] /= 255
	}
	return c
}

// decodeAlphaMap expands a DXT5 alpha block: two endpoints, an 8-entry
// ramp (7-step interpolation when a0 > a1, else 5-step plus {0, 255}),
// then 48 bits of 3-bit indices across the 16 texels.
func decodeAlphaMap(data []byte, loc int) [16]float32 {
	var ramp [8]float32
	ramp[0] = float32(data[loc])
	ramp[1] = float32(data[loc+1])

	if ramp[0] > ramp[1] {
		for i := 1; i < 7; i++ {
			ramp[i+1] = (float32(7-i)*ramp[0] + float32(i)*ramp[1]) / 7
		}
	} else {
		for i := 1; i < 5; i++ {
			ramp[i+1] = (float32(5-i)*ramp[0] + float32(i)*ramp[1]) / 5
		}
		ramp[6] = 0
		ramp[7] = 255
	}
	for i := range ramp {
		ramp[i] /= 255
	}

	var bits uint64
	for i := 2; i < 8; i++ {
		bits |= uint64(data[loc+i]) << ((i - 2) * 8)
	}

	var alpha [16]float32
	for i := 0; i < 16; i++ {
		alpha[i] = ramp[bits&0x7]
		bits >>= 3
	}
	return alpha
}

// decodeDXT walks 4x4 blocks. DXT1 blocks are 8 bytes (colour endpoints
// plus 2-bit indices); DXT5 blocks prepend an 8-byte alpha block. DXT1
// output alpha is 1.
func decodeDXT(data []byte, width, height int, hasAlpha bool) []float32 {
	blocksX := (width + 3) / 4
	blocksY := (height + 3) / 4
	blockSize := 8
	if hasAlpha {
		blockSize = 16
	}
	if len(data) < blocksX*blocksY*blockSize {
		return nil
	}

	dst := make([]float32, width*height*4)
	heightZero := height - 1
	loc := 0

	for y := 0; y < height; y += 4 {
		for x := 0; x < width; x += 4 {
			var alpha [16]float32
			if hasAlpha {
				alpha = decodeAlphaMap(data, loc)
				loc += 8
			}

			colours := decodeColourMap(data, loc)
			loc += 4

			bits := uint32(data[loc]) | uint32(data[loc+1])<<8 |
				uint32(data[loc+2])<<16 | uint32(data[loc+3])<<24
			loc += 4

			for yy := 0; yy < 4; yy++ {
				for xx := 0; xx < 4; xx++ {
					colourIndex := bits & 0x3
					bits >>= 2
					if yy+y >= height || xx+x >= width {
						continue
					}
					idx := (xx + x + (heightZero-(yy+y))*width) * 4
					col := colours[colourIndex]
					dst[idx] = col[0]
					dst[idx+1] = col[1]
					dst[idx+2] = col[2]
					if hasAlpha {
						dst[idx+3] = alpha[xx+yy*4]
					} else {
						dst[idx+3] = 1
					}
				}
			}
		}
	}
	return dst
}
