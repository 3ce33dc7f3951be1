package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"",
	"@external\ndef a():\n    pass\n",
	"x: public(uint256)\n",
	"from ethereum.ercs import IERC20\nimport math as m\n",
	"interface Token:\n    def transfer(to: address, amount: uint256) -> bool: nonpayable\n",
	"struct Point:\n    x: int128\n    y: int128\n",
	"event Transfer:\n    sender: indexed(address)\n    amount: uint256\n",
	"flag Roles:\n    ADMIN\n    USER\n",
	"def f(a: uint256) -> uint256:\n    if a > 1:\n        return a\n    elif a == 1:\n        return 0\n    else:\n        return 2\n",
	"def g():\n    for i: uint256 in range(10):\n        self.total += i ** 2 # acc\n",
	"x = [1, 2,\n  # tail\n]\n",
	"y = 'a' 'b'\nz = 0XFF + 1E3\n",
	"assert x, \"msg\"\nraise\nlog Transfer(a, b)\n",
	"if x: pass\n",
	"a = 1; b = 2\n",
	"initializes: erc20[ownable := ownable]\n",
	"@external\ndef foo(): ...\n",
	"x = f(2. .y)\n0 .E0\n",
	"0#0\r",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	files, err := filepath.Glob(filepath.Join("..", "format", "testdata", "*.vy"))
	if err != nil {
		return
	}
	for _, path := range files {
		// #nosec G304 -- path comes from repository testdata
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func truncateForLog(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
