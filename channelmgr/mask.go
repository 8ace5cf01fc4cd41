package channelmgr

import (
	"fmt"
	"math/bits"
	"strings"
)

// MinChannel and MaxChannel bound the 802.15.4 2.4GHz channel range this
// package operates over.
const (
	MinChannel = 11
	MaxChannel = 26
)

// ChannelMask is a bitmap of 802.15.4 channel numbers, indexed directly by
// channel number (bit 11 represents channel 11, and so on). Channels 0-10
// and 27-31 are unused but representable; callers should stay within
// [MinChannel, MaxChannel].
type ChannelMask uint32

// NewChannelMask builds a mask containing exactly the given channels.
func NewChannelMask(channels ...uint8) ChannelMask {
	var m ChannelMask
	for _, c := range channels {
		m = m.Add(c)
	}
	return m
}

// AllChannelsMask returns a mask containing every channel in
// [MinChannel, MaxChannel].
func AllChannelsMask() ChannelMask {
	var m ChannelMask
	for c := MinChannel; c <= MaxChannel; c++ {
		m = m.Add(uint8(c))
	}
	return m
}

// Add returns a copy of m with channel set.
func (m ChannelMask) Add(channel uint8) ChannelMask {
	return m | (1 << channel)
}

// Remove returns a copy of m with channel cleared.
func (m ChannelMask) Remove(channel uint8) ChannelMask {
	return m &^ (1 << channel)
}

// Contains reports whether channel is a member of m.
func (m ChannelMask) Contains(channel uint8) bool {
	return m&(1<<channel) != 0
}

// Intersect returns the bitwise AND of m and other.
func (m ChannelMask) Intersect(other ChannelMask) ChannelMask {
	return m & other
}

// Union returns the bitwise OR of m and other.
func (m ChannelMask) Union(other ChannelMask) ChannelMask {
	return m | other
}

// IsEmpty reports whether the mask has no members.
func (m ChannelMask) IsEmpty() bool {
	return m == 0
}

// Count returns the number of channels in the mask.
func (m ChannelMask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Channels returns the mask's members in ascending channel order.
func (m ChannelMask) Channels() []uint8 {
	out := make([]uint8, 0, m.Count())
	for c := 0; c < 32; c++ {
		if m.Contains(uint8(c)) {
			out = append(out, uint8(c))
		}
	}
	return out
}

// ChooseRandom picks a member of the mask uniformly at random using rnd. It
// panics if the mask is empty; callers must check IsEmpty first.
func (m ChannelMask) ChooseRandom(rnd Random) uint8 {
	channels := m.Channels()
	if len(channels) == 0 {
		panic("channelmgr: ChooseRandom called on an empty mask")
	}
	idx := rnd.UniformU32InRange(0, uint32(len(channels)))
	return channels[idx]
}

// String renders the mask as a sorted channel list, e.g. "{11,15,20}".
func (m ChannelMask) String() string {
	channels := m.Channels()
	parts := make([]string, len(channels))
	for i, c := range channels {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
