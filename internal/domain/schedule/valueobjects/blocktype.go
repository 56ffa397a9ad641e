package valueobjects

import "fmt"

type BlockType string

const (
	BlockWorkingHours BlockType = "WORKING_HOURS"
	BlockBreak        BlockType = "BREAK"
	BlockTimeOff      BlockType = "TIME_OFF"
)

var validBlockTypes = map[BlockType]bool{
	BlockWorkingHours: true,
	BlockBreak:        true,
	BlockTimeOff:      true,
}

func (b BlockType) String() string {
	return string(b)
}

func (b BlockType) IsValid() bool {
	return validBlockTypes[b]
}

func NewBlockType(s string) (BlockType, error) {
	b := BlockType(s)
	if !b.IsValid() {
		return "", fmt.Errorf("invalid block type: %s", s)
	}
	return b, nil
}
