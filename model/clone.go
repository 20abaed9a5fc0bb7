package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Clone deep copies from into to, which must be a pointer.
func Clone(to, from any) error {
	if err := copier.CopyWithOption(to, from, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("failed to clone %T: %w", from, err)
	}
	return nil
}
