// Package menu implements the numbered, line-oriented command loop.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gradetally/internal/log"
	"gradetally/internal/services"
)

const options = `1. Add card
2. Remove card
3. Update revenue
4. Print report
5. Quit
`

type session struct {
	sc     *bufio.Scanner
	out    io.Writer
	svc    *services.ReportService
	logger *log.Logger
}

// Run prompts on out and reads answers from in until the user quits or in is
// exhausted. Recoverable errors are printed and the loop continues.
func Run(ctx context.Context, in io.Reader, out io.Writer, svc *services.ReportService) error {
	s := &session{
		sc:     bufio.NewScanner(in),
		out:    out,
		svc:    svc,
		logger: log.FromContext(ctx).WithComponent(log.ComponentMenu),
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, options)
		choice, ok := s.ask("Enter your choice: ")
		if !ok {
			return s.sc.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = s.add(ctx)
		case "2":
			ok = s.remove(ctx)
		case "3":
			ok = s.revenue(ctx)
		case "4":
			s.export(ctx)
		case "5":
			s.logger.DebugContext(ctx, "Menu closed", log.FieldOperation, log.OpShutdown)
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 5.")
		}
		if !ok {
			return s.sc.Err()
		}
	}
}

// ask prints label and reads one line. It reports false once input ends.
func (s *session) ask(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.sc.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.sc.Text(), true
}

func (s *session) askCard() (name, grade, cost string, ok bool) {
	if name, ok = s.ask("Enter card name: "); !ok {
		return
	}
	if grade, ok = s.ask("Enter card grade: "); !ok {
		return
	}
	cost, ok = s.ask("Enter card cost: ")
	return
}

func (s *session) add(ctx context.Context) bool {
	name, grade, cost, ok := s.askCard()
	if !ok {
		return false
	}
	c, err := s.svc.AddCard(ctx, name, grade, cost)
	if err != nil {
		fmt.Fprintln(s.out, services.Describe(err, name))
		return true
	}
	fmt.Fprintf(s.out, "Added %s.\n", c)
	return true
}

func (s *session) remove(ctx context.Context) bool {
	name, grade, cost, ok := s.askCard()
	if !ok {
		return false
	}
	c, err := s.svc.RemoveCard(ctx, name, grade, cost)
	if err != nil {
		fmt.Fprintln(s.out, services.Describe(err, name))
		return true
	}
	fmt.Fprintf(s.out, "Removed %s.\n", c)
	return true
}

func (s *session) revenue(ctx context.Context) bool {
	name, ok := s.ask("Enter card name: ")
	if !ok {
		return false
	}
	amount, ok := s.ask("Enter card revenue: ")
	if !ok {
		return false
	}
	if err := s.svc.UpdateRevenue(ctx, name, amount); err != nil {
		fmt.Fprintln(s.out, services.Describe(err, name))
		return true
	}
	r := s.svc.Report()
	rev, _ := r.Revenue(name)
	fmt.Fprintf(s.out, "Revenue for %s set to %s (profit %s).\n", name, s.svc.Format(rev), s.svc.Format(r.Profit(name)))
	return true
}

func (s *session) export(ctx context.Context) {
	path, err := s.svc.Export(ctx)
	if err != nil {
		fmt.Fprintln(s.out, services.Describe(err, ""))
		return
	}
	fmt.Fprintf(s.out, "Report written to %s.\n", path)
}
