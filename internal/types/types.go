// internal/types/types.go
package types

import "fmt"

// Handle — слабая ссылка на сущность в пуле: индекс слота плюс поколение.
// Если поколение слота изменилось, сущность считается удалённой.
type Handle struct {
	Index uint32
	Gen   uint32
}

// NilHandle никогда не выдаётся пулом (поколения начинаются с 1).
var NilHandle = Handle{}

// IsNil сообщает, что ссылка пустая.
func (h Handle) IsNil() bool {
	return h.Gen == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Index, h.Gen)
}
