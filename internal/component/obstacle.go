// internal/component/obstacle.go
package component

import "go-bubble-shooter/internal/utils"

// Obstacle — неподвижная стена. В течение раунда не меняется.
type Obstacle struct {
	Rect utils.Rect
}
