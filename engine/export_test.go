package engine

// PlaceSnake lets external tests build arbitrary bodies
var PlaceSnake = placeSnake
