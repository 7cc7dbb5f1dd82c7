package core

// Color is a semantic colour slot for a screen cell. The platform layer maps
// each slot to a terminal colour, so game code never deals with palettes.
type Color uint8

// Colour slots used by the renderer.
const (
	ColorDefault Color = iota
	ColorText
	ColorDim
	ColorTitle
	ColorSelected
	ColorBorder
	ColorAlert
	ColorSnakeHead
	ColorSnakeBody
	ColorSnakeGhost
	ColorSnakeDead
	ColorFoodNormal
	ColorFoodSpecial
	ColorFoodSuper
	ColorFoodShrink
	ColorFoodSlowmo
	ColorFoodDouble
	ColorFoodGhost
	ColorObstacle
	ColorObstacleMoving
)
