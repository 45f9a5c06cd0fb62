package club

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"cafedeslettres/internal/activity"
	"cafedeslettres/internal/platform/logging"
	"cafedeslettres/internal/platform/metrics"
)

var ErrInvalidClub = errors.New("club name is required")

type Service struct {
	repo     Repository
	activity activity.Recorder
}

func NewService(repo Repository, recorder activity.Recorder) *Service {
	return &Service{repo: repo, activity: recorder}
}

// List returns clubs for the requested tab. The "my" tab is empty for anonymous callers.
func (s *Service) List(ctx context.Context, f Filter) ([]Club, error) {
	f.Search = strings.TrimSpace(f.Search)
	if f.Tab == TabMy && f.UserID == "" {
		return []Club{}, nil
	}
	clubs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if clubs == nil {
		clubs = []Club{}
	}
	return clubs, nil
}

// Create stores a new club with its creator as first member.
func (s *Service) Create(ctx context.Context, userID, name, abbreviation string, description *string) (*Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidClub
	}
	abbreviation = strings.ToUpper(strings.TrimSpace(abbreviation))
	if abbreviation == "" {
		abbreviation = Abbreviate(name)
	}
	if description != nil {
		d := strings.TrimSpace(*description)
		description = lo.Ternary[*string](d == "", nil, &d)
	}

	c := &Club{
		Name:         name,
		Abbreviation: abbreviation,
		Description:  description,
	}
	if err := s.repo.Create(ctx, c, userID); err != nil {
		return nil, err
	}
	c.MemberCount = 1
	c.IsMember = true
	s.record(ctx, userID, c.ID, c.Name)
	return c, nil
}

// Join adds the member to the club.
func (s *Service) Join(ctx context.Context, userID, clubID string) error {
	name, err := s.repo.AddMember(ctx, clubID, userID)
	if err != nil {
		return err
	}
	metrics.ClubMembershipChanged("join")
	s.record(ctx, userID, clubID, name)
	return nil
}

// Leave removes the member from the club.
func (s *Service) Leave(ctx context.Context, userID, clubID string) error {
	if err := s.repo.RemoveMember(ctx, clubID, userID); err != nil {
		return err
	}
	metrics.ClubMembershipChanged("leave")
	return nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Summary, error) {
	clubs, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if clubs == nil {
		clubs = []Summary{}
	}
	return clubs, nil
}

func (s *Service) record(ctx context.Context, userID, clubID, name string) {
	desc := "A rejoint le club « " + name + " »"
	if err := s.activity.Record(ctx, userID, activity.TypeClubJoined, desc, clubID); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("club_id", clubID).Warn("record club activity")
	}
}

var stopWords = []string{"le", "la", "les", "l'", "de", "des", "du", "d'", "et", "un", "une", "au", "aux"}

// Abbreviate builds an up-to-three-letter badge from the initials of the
// significant words of name.
func Abbreviate(name string) string {
	words := lo.Filter(strings.Fields(name), func(w string, _ int) bool {
		return !lo.Contains(stopWords, strings.ToLower(w))
	})
	if len(words) == 0 {
		words = strings.Fields(name)
	}
	initials := lo.Map(words, func(w string, _ int) string {
		return string(unicode.ToUpper([]rune(w)[0]))
	})
	return strings.Join(lo.Slice(initials, 0, 3), "")
}
