package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
	GesturePullToRefresh
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond

	// PullToRefreshEdge is how close to the top a downward swipe must start
	// to count as pull-to-refresh
	PullToRefreshEdge float32 = 80.0
)

// GestureHandler turns raw touch events into high-level gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	duration := time.Since(gh.touchStartTime)

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y

	if abs(dx) < gh.swipeThreshold && abs(dy) < gh.swipeThreshold {
		if duration >= gh.longPressDuration {
			gh.triggerGesture(GestureLongPress)
		} else {
			gh.triggerGesture(GestureTap)
		}
		return
	}

	// Vertical swipes only; horizontal movement has no binding in this app
	if abs(dy) <= abs(dx) {
		return
	}

	if dy > 0 {
		if gh.touchStartPos.Y <= PullToRefreshEdge {
			gh.triggerGesture(GesturePullToRefresh)
		} else {
			gh.triggerGesture(GestureSwipeDown)
		}
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

// triggerGesture invokes the gesture callback if set
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// GestureArea wraps content and feeds its touch events into a GestureHandler.
// Used on the headline screen so a pull from the top refreshes the feed.
type GestureArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	handler *GestureHandler
}

// NewGestureArea creates a gesture-detecting wrapper around content
func NewGestureArea(content fyne.CanvasObject, handler *GestureHandler) *GestureArea {
	ga := &GestureArea{
		content: content,
		handler: handler,
	}
	ga.ExtendBaseWidget(ga)
	return ga
}

// CreateRenderer renders the wrapped content
func (ga *GestureArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ga.content)
}

// TouchDown implements mobile.Touchable
func (ga *GestureArea) TouchDown(event *mobile.TouchEvent) {
	ga.handler.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (ga *GestureArea) TouchUp(event *mobile.TouchEvent) {
	ga.handler.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (ga *GestureArea) TouchCancel(event *mobile.TouchEvent) {
	// Abandoned touch, nothing to trigger
}
