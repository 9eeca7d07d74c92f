package etris

// DrawBlockFunc is called once for every cell whose displayed color changed.
// Coordinates are grid coordinates including the border; c is the color
// identifier the front end maps to a pixel color.
type DrawBlockFunc func(x, y int, c Cell)

// UpdateScoreFunc is called once per engine call that changed the score,
// after all grid mutations of that call are complete.
type UpdateScoreFunc func(score, lines, figures int)

// hooks bundles the two front-end callbacks of one engine instance.
type hooks struct {
	drawBlock   DrawBlockFunc
	updateScore UpdateScoreFunc
}
