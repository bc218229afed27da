package reconciliation

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/chess-escrow/internal/domain/entity"
	errs "github.com/amirhossein-jamali/chess-escrow/internal/domain/error"
	"github.com/amirhossein-jamali/chess-escrow/internal/domain/port/core"
)

// SweepSettlements settles every ACCEPTED challenge involving username whose game has
// finished; an empty username sweeps all challenges
func (w *Worker) SweepSettlements(ctx context.Context, username string) error {
	_, err := w.sweepSettlements(ctx, username, nil)
	return err
}

func (w *Worker) sweepSettlements(ctx context.Context, username string, report *entity.ReconciliationReport) (int, error) {
	challenges, err := w.uow.GetChallengeRepository(ctx).ListByStatus(ctx, entity.ChallengeAccepted, username)
	if err != nil {
		return 0, fmt.Errorf("failed to list accepted challenges: %w", err)
	}

	var settled int
	for _, challenge := range challenges {
		done, err := w.settleChallenge(ctx, challenge)
		if err != nil {
			if !skippable(err) {
				return settled, err
			}
			w.logSkipped("Challenge left unsettled", err, map[string]any{
				"challenge_id": challenge.ID,
			})
			if report != nil {
				report.AddError(err)
			}
			continue
		}
		if done {
			settled++
		}
	}
	if report != nil {
		report.ChallengesChecked += len(challenges)
		report.ChallengesSettled += settled
	}
	return settled, nil
}

// SettleChallenge settles challenge if its game has finished and updates it in place.
// Failures of the game service are logged and leave the challenge ACCEPTED.
func (w *Worker) SettleChallenge(ctx context.Context, challenge *entity.Challenge) error {
	_, err := w.settleChallenge(ctx, challenge)
	if err != nil && skippable(err) {
		w.logSkipped("Challenge left unsettled", err, map[string]any{
			"challenge_id": challenge.ID,
		})
		return nil
	}
	return err
}

func (w *Worker) settleChallenge(ctx context.Context, challenge *entity.Challenge) (bool, error) {
	if challenge.Status != entity.ChallengeAccepted {
		return false, nil
	}
	if challenge.ExternalGameID == "" {
		w.logger.Warn("Accepted challenge has no game", map[string]any{"challenge_id": challenge.ID})
		return false, nil
	}

	result, err := w.games.GetGameResult(ctx, challenge.ExternalGameID)
	if err != nil {
		return false, err
	}
	if !result.IsTerminal() {
		return false, nil
	}

	settlement, err := entity.ComputeSettlement(challenge, result, w.admin)
	if err != nil {
		return false, err
	}

	err = w.uow.Do(ctx, func(txCtx context.Context) error {
		// The ACCEPTED guard comes first so a second settler stops before crediting anyone
		err := w.uow.GetChallengeRepository(txCtx).UpdateStatus(
			txCtx,
			challenge.ID,
			entity.ChallengeAccepted,
			entity.ChallengeCompleted,
			entity.ChallengeUpdate{},
		)
		if err != nil {
			return err
		}

		ledgerRepo := w.uow.GetLedgerRepository(txCtx)
		challengeID := challenge.ID
		for _, payout := range settlement.Payouts {
			if _, err := ledgerRepo.Credit(txCtx, payout.Username, payout.Amount); err != nil {
				return err
			}
			record, err := entity.NewLedgerEntry(payout.Username, payout.Type, payout.Amount, payout.Detail, &challengeID, w.timeProvider)
			if err != nil {
				return err
			}
			if err := ledgerRepo.AppendTransaction(txCtx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if errs.IsStateConflictError(err) {
		// already settled by someone else
		challenge.Status = entity.ChallengeCompleted
		return false, nil
	}
	if err != nil {
		return false, err
	}

	challenge.Status = entity.ChallengeCompleted
	challenge.UpdatedAt = w.timeProvider.Now()

	fields := map[string]any{
		"challenge_id":     challenge.ID,
		"external_game_id": challenge.ExternalGameID,
		"winner":           settlement.Winner,
		"fee":              settlement.Fee,
		"game_status":      result.RawStatus,
	}
	w.logger.Info("Challenge settled", fields)
	w.notifier.Publish(ctx, core.EventChallengeCompleted, fields)
	return true, nil
}
