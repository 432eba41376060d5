package terminal

import "github.com/gdamore/tcell/v2"

// Run draws p on s and processes events until the painter quits or the
// screen stops delivering events. The caller owns Init and Fini of s.
func Run(s tcell.Screen, p *Painter) error {
	p.Draw(s)
	s.Show()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if p.HandleKey(ev) {
				return nil
			}
		}
		p.Draw(s)
		s.Show()
	}
}
