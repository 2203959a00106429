package service

import (
	"context"
	"slices"

	"github.com/nakamauwu/hirechat/auth"
	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
	"golang.org/x/sync/errgroup"
)

// CreateJobThread gets or creates the conversation between the hiring side
// of a job posting and a candidate, then syncs its participants from the
// current company roster.
// Callers must be the candidate, staff of the posting, or an admin.
func (svc *Service) CreateJobThread(ctx context.Context, in types.CreateJobThread) (types.ResolvedConversation, error) {
	var out types.ResolvedConversation

	if err := in.Validate(); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	in.SetLoggedInUserID(caller.UserID)

	var (
		posting   types.JobPosting
		candidate types.Candidate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posting, err = svc.JobPostings.JobPosting(gctx, in.JobPostingID)
		if err == nil && posting.Deleted {
			err = errs.JobPostingNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		candidate, err = svc.Candidates.Candidate(gctx, in.CandidateID)
		if err == nil && candidate.Deleted {
			err = errs.CandidateNotFound
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return out, err
	}

	var staff []string
	if posting.CompanyID != nil {
		staff, err = svc.CompanyRoster.CompanyStaff(ctx, *posting.CompanyID)
		if err != nil {
			return out, err
		}
	}

	isCandidate := candidate.UserID != nil && *candidate.UserID == caller.UserID
	isOwner := posting.OwnerUserID != nil && *posting.OwnerUserID == caller.UserID
	isStaff := slices.Contains(staff, caller.UserID)
	if !isCandidate && !isOwner && !isStaff && !caller.IsAdmin() {
		return out, errs.Forbidden
	}

	out, err = svc.Cockroach.CreateOrGetConversation(ctx, types.CreateConversation{
		Identity: types.JobThread{JobPostingID: posting.ID, CandidateID: candidate.ID},
		Title:    &posting.Title,
	})
	if err != nil {
		return out, err
	}

	_, err = svc.Cockroach.SyncParticipants(ctx, out.ID, jobThreadParticipants(caller, posting, candidate, staff))
	if err != nil {
		return out, err
	}

	out.Participants, err = svc.Cockroach.Participants(ctx, out.ID)
	if err != nil {
		return out, err
	}

	svc.fanoutConversationUpdated(out.ID)

	return out, nil
}

func jobThreadParticipants(caller auth.Principal, posting types.JobPosting, candidate types.Candidate, staff []string) []types.DesiredParticipant {
	var out []types.DesiredParticipant

	if candidate.UserID != nil {
		out = append(out, types.DesiredParticipant{UserID: *candidate.UserID, Role: types.RoleCandidate})
	}

	if posting.OwnerUserID != nil {
		out = append(out, types.DesiredParticipant{UserID: *posting.OwnerUserID, Role: types.RoleCounterpart})
	}

	for _, userID := range staff {
		out = append(out, types.DesiredParticipant{UserID: userID, Role: types.RoleCounterpart})
	}

	if caller.IsAdmin() {
		out = append(out, types.DesiredParticipant{UserID: caller.UserID, Role: types.RoleAdmin})
	}

	return out
}

// CreateDirectThread gets or creates the conversation between
// the logged in admin and another user.
func (svc *Service) CreateDirectThread(ctx context.Context, in types.CreateDirectThread) (types.ResolvedConversation, error) {
	var out types.ResolvedConversation

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if !caller.IsAdmin() {
		return out, errs.Forbidden
	}

	in.SetLoggedInUserID(caller.UserID)

	if err := in.Validate(); err != nil {
		return out, err
	}

	out, err = svc.Cockroach.CreateOrGetConversation(ctx, types.CreateConversation{
		Identity: types.NewDirectThread(caller.UserID, in.UserID),
	})
	if err != nil {
		return out, err
	}

	out.Participants, err = svc.Cockroach.SyncParticipants(ctx, out.ID, []types.DesiredParticipant{
		{UserID: caller.UserID, Role: types.RoleAdmin},
		{UserID: in.UserID, Role: types.RoleCounterpart},
	})
	if err != nil {
		return out, err
	}

	svc.fanoutConversationUpdated(out.ID)

	return out, nil
}

// CreateSupportThread gets or creates the support conversation of the logged in user.
func (svc *Service) CreateSupportThread(ctx context.Context) (types.ResolvedConversation, error) {
	var out types.ResolvedConversation

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	identity := types.SupportThread{UserID: caller.UserID}
	if err := identity.Validate(); err != nil {
		return out, err
	}

	out, err = svc.Cockroach.CreateOrGetConversation(ctx, types.CreateConversation{Identity: identity})
	if err != nil {
		return out, err
	}

	out.Participants, err = svc.Cockroach.SyncParticipants(ctx, out.ID, []types.DesiredParticipant{
		{UserID: caller.UserID, Role: types.RoleGuest},
	})
	if err != nil {
		return out, err
	}

	return out, nil
}

func (svc *Service) Conversation(ctx context.Context, conversationID string) (types.Conversation, error) {
	var out types.Conversation

	if err := types.ValidConversationID(conversationID); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if _, err := svc.ensureAccess(ctx, conversationID, caller, accessRead); err != nil {
		return out, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out, err = svc.Cockroach.ConversationForViewer(gctx, conversationID, caller.UserID)
		return err
	})

	var participants []types.Participant
	g.Go(func() error {
		var err error
		participants, err = svc.Cockroach.Participants(gctx, conversationID)
		return err
	})

	if err := g.Wait(); err != nil {
		return out, err
	}

	out.Participants = participants
	return out, nil
}

// Conversations lists the inbox of the logged in user.
// Listing every conversation is reserved to admins.
func (svc *Service) Conversations(ctx context.Context, in types.ListConversations) (types.Page[types.Conversation], error) {
	var out types.Page[types.Conversation]

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if in.All && !caller.IsAdmin() {
		return out, errs.Forbidden
	}

	if err := in.Validate(); err != nil {
		return out, err
	}

	in.SetLoggedInUserID(caller.UserID)

	return svc.Cockroach.Conversations(ctx, in)
}

// SetConversationStatus archives, closes or reopens a conversation. Admins only.
func (svc *Service) SetConversationStatus(ctx context.Context, in types.UpdateConversation) (types.Conversation, error) {
	var out types.Conversation

	if err := in.Validate(); err != nil {
		return out, err
	}

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if !caller.IsAdmin() {
		return out, errs.Forbidden
	}

	out, err = svc.Cockroach.UpdateConversation(ctx, in)
	if err != nil {
		return out, err
	}

	svc.fanoutConversationUpdated(out.ID)

	return out, nil
}
