package gf2

import "github.com/lavode/coinflip/rng"

// ModGen is a (modulus, generator) pair for some GF(2^size) field.
type ModGen struct {
	Mod       uint64
	Generator uint64
}

// hardcodedTable reproduces, verbatim, the precomputed irreducible
// modulus / generator pairs the reference implementation ships for
// k = 8, 16, 32. Searching for a fresh irreducible polynomial and
// generator is the dominant cost of generateKeys at larger party counts;
// this table lets a run skip that search entirely when an embedding
// opts into hardcode mode.
var hardcodedTable = map[uint][]ModGen{
	8: {
		{0x15f, 0x1e}, {0x1a3, 0x98}, {0x165, 0x36}, {0x14d, 0xd2},
		{0x1d7, 0x48}, {0x1f3, 0xad}, {0x177, 0x6c}, {0x1d7, 0x31},
		{0x1dd, 0x70}, {0x1cf, 0x73}, {0x14d, 0x4b}, {0x13f, 0xa9},
		{0x12d, 0xd1}, {0x171, 0x29}, {0x11b, 0x2c}, {0x1dd, 0x39},
		{0x169, 0x91}, {0x139, 0x60}, {0x177, 0xa5}, {0x1b1, 0xcf},
		{0x139, 0x5f}, {0x1c3, 0x54}, {0x12b, 0x6}, {0x1cf, 0x54},
		{0x1f5, 0xeb}, {0x1d7, 0x38}, {0x1bd, 0xd4}, {0x165, 0xc2},
		{0x13f, 0x8d}, {0x177, 0x75}, {0x165, 0x8a}, {0x18b, 0x39},
		{0x171, 0x24}, {0x18d, 0x80}, {0x177, 0x5b}, {0x165, 0x87},
		{0x1d7, 0x38}, {0x1a3, 0x47}, {0x12b, 0x10}, {0x169, 0xdb},
		{0x18d, 0x6e}, {0x18b, 0x75}, {0x139, 0x3f}, {0x171, 0x38},
		{0x1f9, 0x82}, {0x1bd, 0x56}, {0x187, 0x99}, {0x1a3, 0xa4},
		{0x12d, 0x43}, {0x13f, 0x7}, {0x1e7, 0xd7}, {0x1f3, 0xfc},
		{0x19f, 0xb5}, {0x1bd, 0xb9}, {0x14d, 0x4b}, {0x19f, 0xa5},
		{0x139, 0x74}, {0x169, 0x21}, {0x12b, 0x86}, {0x171, 0x68},
		{0x14d, 0xaf}, {0x1c3, 0xf1}, {0x15f, 0x87},
	},
	16: {
		{0x1a2fd, 0x9ae5}, {0x1ed5f, 0xb46}, {0x151d3, 0xce65}, {0x1640d, 0xfe3c},
		{0x1d441, 0xec58}, {0x17447, 0xca95}, {0x17515, 0xf3db}, {0x15851, 0x3955},
		{0x1315d, 0xc8bd}, {0x183d5, 0x669a}, {0x1683b, 0xa4d2}, {0x1bd65, 0x4a5c},
		{0x1ecad, 0x379a}, {0x1e233, 0x3223}, {0x1cf09, 0x8c3c}, {0x12295, 0xa3c6},
		{0x1ece9, 0x2811}, {0x15289, 0xd23c}, {0x167a1, 0x625d}, {0x148f5, 0x6deb},
		{0x1ecd9, 0x2b4f}, {0x14a6d, 0xa014}, {0x1d72d, 0x5715}, {0x19b5d, 0xfff},
		{0x179ab, 0xd40a}, {0x11127, 0xc5d0}, {0x19517, 0xb040}, {0x19055, 0x159c},
		{0x1dd99, 0x59c9}, {0x1af93, 0x6dc9}, {0x17a61, 0x5d9d}, {0x141e1, 0xdbcf},
		{0x1728d, 0x65fa}, {0x1ef85, 0xfba4}, {0x158d9, 0xdaa4}, {0x1df29, 0xa3},
		{0x1e87d, 0xa18}, {0x18315, 0xbb10}, {0x1ddf3, 0x30a2}, {0x10d43, 0xee1b},
		{0x1554b, 0xcc91}, {0x1e7a5, 0xd89d}, {0x1db47, 0xb916}, {0x1cb23, 0xf5f7},
		{0x189ad, 0x4132}, {0x17e41, 0x49c3}, {0x1aadd, 0xabc4}, {0x14c67, 0x3c66},
		{0x17e65, 0x6044}, {0x1ec2f, 0x49e8}, {0x19335, 0x781c}, {0x1e6ad, 0xd69b},
		{0x19d49, 0x1f52}, {0x1c1df, 0xc189}, {0x14a91, 0x174}, {0x16749, 0x52dd},
		{0x1ab3d, 0xcb11}, {0x14dd1, 0x331e}, {0x1844d, 0x165a}, {0x17711, 0x35d7},
		{0x11a6b, 0x1911}, {0x1b05b, 0x4f79}, {0x1e439, 0xc646}, {0x1ba85, 0x1771},
		{0x1706b, 0xf1ba}, {0x12ec9, 0x7d26}, {0x161ef, 0x9751}, {0x182bb, 0xc451},
		{0x1562d, 0x72a6}, {0x159ff, 0x501e}, {0x1d8c3, 0x5fd3}, {0x1ff05, 0xa6c7},
		{0x1e233, 0xdf8e}, {0x1c527, 0x2b57}, {0x1c8ef, 0xdc7e}, {0x183b3, 0x24de},
		{0x1f60f, 0x6150}, {0x16539, 0xada9}, {0x1e0d5, 0xfcc0}, {0x1708f, 0xfd37},
		{0x1a4cd, 0xd030}, {0x175a7, 0xc1ac}, {0x1cf33, 0x5dca}, {0x11bbd, 0x89f9},
		{0x1bc45, 0x5b7e}, {0x14d39, 0x719b}, {0x18a0d, 0x51ba}, {0x1abd9, 0x539b},
		{0x12cad, 0x586a}, {0x1aa21, 0x6506}, {0x1733d, 0x3747}, {0x12051, 0xfd31},
		{0x1c1cd, 0xdb}, {0x1ea51, 0x49cc}, {0x1a6b7, 0x41e5}, {0x1916b, 0xbe1e},
		{0x10175, 0xb0bd}, {0x15ad7, 0xef65}, {0x1915d, 0xad36}, {0x1f93f, 0xe2e8},
		{0x164b9, 0x1047}, {0x11ae5, 0x4b93}, {0x15b45, 0x8603}, {0x18985, 0x5eb2},
		{0x1dd39, 0x9b0a}, {0x19ba1, 0xeb7}, {0x115df, 0xe7ae}, {0x19681, 0xe9fd},
		{0x11bbd, 0x25cf}, {0x191a1, 0xc093}, {0x16a3f, 0x1790}, {0x18637, 0xbc40},
		{0x11c57, 0xb065},
	},
	32: {
		{0x1020609b3, 0xf2dff8e8}, {0x10ae3a5b5, 0xb3a61eea}, {0x10c44a745, 0xb46b3c1a},
		{0x112db649d, 0x9e10e810}, {0x112e52541, 0xc7742a13}, {0x118651375, 0x510b540a},
		{0x11950d75b, 0x9341edbe}, {0x122d26c33, 0x6c3e5484}, {0x125f3797b, 0x8a9b0b93},
		{0x12828e52f, 0xf4fd377e}, {0x12d232ce1, 0xf16c0589}, {0x12d36bf61, 0xe1f65ad3},
		{0x1306a6fa5, 0x41e23c41}, {0x131ca7e5b, 0xab469edb}, {0x1322f2dd7, 0x57e61cc6},
		{0x132cc9d0f, 0xb3ecc0b2}, {0x136941fdd, 0xe0b7a98f}, {0x138dfd1bb, 0x2632ae57},
		{0x13e0d9af5, 0x785fdb2f}, {0x1494df651, 0xf87b1bf0}, {0x14b1aa05d, 0x2b2278dc},
		{0x14e077749, 0x3b714eac}, {0x15c31b23b, 0xbb248f8d}, {0x16a66447d, 0xee283233},
		{0x16df76d31, 0x738763c9}, {0x16e16d1ff, 0xe3cc25f5}, {0x170e2a4f9, 0x7ad302d1},
		{0x17113ff8f, 0x501d7d2}, {0x1749d92ff, 0xe9a7cc7d}, {0x1785697b3, 0x2b59f8fd},
		{0x188e3491b, 0x8212121d}, {0x18cb94dbd, 0xc467da7d}, {0x18f165e83, 0x67feb58b},
		{0x1957dcd91, 0x48199453}, {0x195e486cd, 0x31479fe5}, {0x199740c05, 0xdd9345ba},
		{0x19b98d4e1, 0x947b658c}, {0x1a688aecd, 0xc776e3a0}, {0x1a85c5fd5, 0xf13e16f2},
		{0x1aeb6425f, 0xdcf8fe94}, {0x1c161ab4f, 0x2a9b8784}, {0x1c61943eb, 0x78501824},
		{0x1c811fbed, 0x893dd8d4}, {0x1c93bbbf1, 0xaefa4d2c}, {0x1cfde74f5, 0x856eec7a},
		{0x1d31abc89, 0xe3c0f1bb}, {0x1e2dbe967, 0x844071a2}, {0x1e1ee55cf, 0xbf47c9d0},
		{0x1e41f4bbf, 0xcc98d5eb}, {0x1e684059b, 0xa6d827c3}, {0x1ea9d620d, 0xba5cba95},
		{0x1ee2d6291, 0xb9740837}, {0x1f039fedf, 0xfa3a5a3d}, {0x1ffd5e933, 0x320c9e72},
		{0x1ffe77383, 0x8b4caadb},
	},
}

// HardcodedModGen reports whether a hardcoded (modulus, generator) table
// exists for the given field size, returning the table when it does.
func HardcodedModGen(size uint) ([]ModGen, bool) {
	table, ok := hardcodedTable[size]
	return table, ok
}

// GenerateParams produces a (mod, generator) pair for GF(2^size). When
// hardcode is true and a table exists for size, it draws a random entry
// and re-randomizes the generator via DeriveGenerator so repeated runs
// against the same table do not retrace the same subgroup walk; otherwise
// it falls back to a fresh irreducible-polynomial and generator search.
func GenerateParams(size uint, src rng.Source, hardcode bool) (mod uint64, generator uint64, err error) {
	if hardcode {
		if table, ok := HardcodedModGen(size); ok {
			entry := table[src.RandomBelow(uint64(len(table)))]
			g := DeriveGenerator(size, entry.Mod, entry.Generator, src)
			return entry.Mod, g, nil
		}
	}

	mod, err = FindIrreducible(size, src)
	if err != nil {
		return 0, 0, err
	}
	generator, err = FindGenerator(size, mod, src)
	if err != nil {
		return 0, 0, err
	}
	return mod, generator, nil
}
