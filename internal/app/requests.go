package app

// frameRequests holds work that must run between rendering a frame and
// presenting it.
type frameRequests struct {
	screenshot bool
}

func (r *frameRequests) requestScreenshot() {
	r.screenshot = true
}

// flush runs capture once if a screenshot was requested since the last
// flush. Repeated requests within one iteration collapse into one capture.
func (r *frameRequests) flush(capture func()) bool {
	if !r.screenshot {
		return false
	}
	r.screenshot = false
	capture()
	return true
}
