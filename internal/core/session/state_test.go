package session_test

import (
	"testing/quick"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"wolftimer/internal/core/model"
	. "wolftimer/internal/core/session"
)

func newConfig(minutes, blocks, questions int) model.SessionConfig {
	return model.SessionConfig{
		TimePerBlockMinutes:  minutes,
		NumBlocks:            blocks,
		NumQuestionsPerBlock: questions,
		OpacityPercent:       75,
	}
}

func tickN(state *State, n int) []Signal {
	signals := make([]Signal, 0, n)
	for i := 0; i < n; i++ {
		signals = append(signals, state.Tick())
	}
	return signals
}

var _ = Describe("State", func() {

	Context("when initialized", func() {
		It("should derive the configuration and start running", func() {
			state := New(newConfig(1, 2, 2))
			snapshot := state.Snapshot()

			Expect(snapshot.Config.SecondsPerBlock()).To(Equal(60))
			Expect(snapshot.Config.SecondsPerQuestion()).To(Equal(30))
			Expect(snapshot.RemainingTotalSeconds).To(Equal(120))
			Expect(snapshot.CurrentQuestion).To(Equal(1))
			Expect(snapshot.CurrentBlock).To(Equal(1))
			Expect(snapshot.BlockElapsedSeconds).To(BeZero())
			Expect(snapshot.QuestionElapsedSeconds).To(BeZero())
			Expect(state.IsRunning()).To(BeTrue())
		})

		It("should move every counter by exactly one on the first tick", func() {
			loop := func(a, b, c uint8) bool {
				minutes := int(a)%30 + 1
				blocks := int(b)%10 + 1
				questions := int(c)%30 + 1

				state := New(newConfig(minutes, blocks, questions))
				before := state.Snapshot()
				Expect(state.Tick()).To(Equal(SignalContinue))
				after := state.Snapshot()

				Expect(after.RemainingTotalSeconds).To(Equal(before.RemainingTotalSeconds - 1))
				Expect(after.BlockElapsedSeconds).To(Equal(1))
				Expect(after.QuestionElapsedSeconds).To(Equal(1))
				return true
			}
			Expect(quick.Check(loop, nil)).To(Succeed())
		})
	})

	Context("when paused or stopped", func() {
		It("should not change any counter while paused", func() {
			state := New(newConfig(1, 1, 2))
			tickN(state, 5)
			state.TogglePause()
			before := state.Snapshot()

			for _, signal := range tickN(state, 100) {
				Expect(signal).To(Equal(SignalContinue))
			}
			Expect(state.Snapshot()).To(Equal(before))
		})

		It("should not change any counter while stopped", func() {
			state := New(newConfig(1, 1, 1))
			state.Stop()
			before := state.Snapshot()

			for _, signal := range tickN(state, 120) {
				Expect(signal).To(Equal(SignalContinue))
			}
			Expect(state.Snapshot()).To(Equal(before))
		})
	})

	Context("with one block of one question", func() {
		It("should complete on the sixtieth tick", func() {
			state := New(newConfig(1, 1, 1))

			for i := 1; i < 60; i++ {
				Expect(state.Tick()).To(Equal(SignalContinue))
				Expect(state.Snapshot().RemainingTotalSeconds).To(Equal(60 - i))
			}

			Expect(state.Tick()).To(Equal(SignalCompleted))
			snapshot := state.Snapshot()
			Expect(snapshot.RemainingTotalSeconds).To(Equal(0))
			Expect(snapshot.CurrentQuestion).To(Equal(1))
			Expect(snapshot.BlockElapsedSeconds).To(BeZero())
			Expect(snapshot.QuestionElapsedSeconds).To(BeZero())
		})

		It("should let the remaining time go negative if ticking continues", func() {
			state := New(newConfig(1, 1, 1))
			tickN(state, 60)
			state.Tick()
			Expect(state.Snapshot().RemainingTotalSeconds).To(Equal(-1))
		})
	})

	Context("with two blocks of two questions", func() {
		It("should advance the question, then the block", func() {
			state := New(newConfig(1, 2, 2))

			signals := tickN(state, 30)
			for _, signal := range signals[:29] {
				Expect(signal).To(Equal(SignalContinue))
			}
			Expect(signals[29]).To(Equal(SignalQuestionAdvanced))
			Expect(state.Snapshot().CurrentQuestion).To(Equal(2))

			signals = tickN(state, 30)
			for _, signal := range signals[:29] {
				Expect(signal).To(Equal(SignalContinue))
			}
			Expect(signals[29]).To(Equal(SignalBlockAdvanced))

			snapshot := state.Snapshot()
			Expect(snapshot.CurrentBlock).To(Equal(2))
			Expect(snapshot.CurrentQuestion).To(Equal(1))
			Expect(snapshot.RemainingTotalSeconds).To(Equal(60))
		})

		It("should complete after the final block", func() {
			state := New(newConfig(1, 2, 2))
			signals := tickN(state, 120)

			counts := map[Signal]int{}
			for _, signal := range signals {
				counts[signal]++
			}
			Expect(counts[SignalQuestionAdvanced]).To(Equal(2))
			Expect(counts[SignalBlockAdvanced]).To(Equal(1))
			Expect(counts[SignalCompleted]).To(Equal(1))
			Expect(signals[119]).To(Equal(SignalCompleted))
		})
	})

	Context("when questions do not divide the block evenly", func() {
		It("should hold the last question until the block ends", func() {
			// 60 seconds over 7 questions leaves 8 seconds per question.
			state := New(newConfig(1, 1, 7))

			signals := tickN(state, 56)
			Expect(signals[47]).To(Equal(SignalQuestionAdvanced))
			Expect(signals[55]).To(Equal(SignalContinue))
			snapshot := state.Snapshot()
			Expect(snapshot.CurrentQuestion).To(Equal(7))
			Expect(snapshot.QuestionElapsedSeconds).To(BeZero())

			signals = tickN(state, 4)
			Expect(signals[3]).To(Equal(SignalCompleted))
		})
	})

	Context("when reporting progress", func() {
		It("should stay below one hundred and drop to zero after a boundary", func() {
			state := New(newConfig(1, 2, 3))
			for i := 0; i < 120; i++ {
				signal := state.Tick()
				question := state.QuestionProgressPercent()
				block := state.BlockProgressPercent()

				Expect(question).To(BeNumerically(">=", 0))
				Expect(question).To(BeNumerically("<", 100))
				Expect(block).To(BeNumerically(">=", 0))
				Expect(block).To(BeNumerically("<", 100))
				if signal != SignalContinue {
					Expect(question).To(BeZero())
				}
				if signal == SignalBlockAdvanced || signal == SignalCompleted {
					Expect(block).To(BeZero())
				}
			}
		})

		It("should report zero for an underived configuration", func() {
			state := &State{}
			Expect(state.QuestionProgressPercent()).To(BeZero())
			Expect(state.BlockProgressPercent()).To(BeZero())
		})

		It("should report the time left in the block", func() {
			state := New(newConfig(1, 1, 2))
			tickN(state, 15)
			Expect(state.BlockRemainingSeconds()).To(Equal(45))
			Expect(state.Snapshot().BlockProgress).To(Equal(25))
			Expect(state.Snapshot().QuestionProgress).To(Equal(50))
		})
	})

	Context("when changing run state", func() {
		It("should always run after Start", func() {
			state := New(newConfig(1, 1, 1))
			state.TogglePause()
			state.Stop()
			state.Start()
			Expect(state.IsRunning()).To(BeTrue())
			Expect(state.IsPaused()).To(BeFalse())
		})

		It("should never run after Stop, whatever the pause flag", func() {
			for _, paused := range []bool{false, true} {
				state := New(newConfig(1, 1, 1))
				if paused {
					state.TogglePause()
				}
				state.Stop()
				Expect(state.IsRunning()).To(BeFalse())
				Expect(state.IsPaused()).To(Equal(paused))
			}
		})

		It("should toggle pause even when stopped", func() {
			state := New(newConfig(1, 1, 1))
			state.Stop()
			state.TogglePause()
			Expect(state.IsPaused()).To(BeTrue())
			Expect(state.IsStopped()).To(BeTrue())
		})

		It("should keep counters when the opacity changes", func() {
			state := New(newConfig(1, 1, 2))
			tickN(state, 10)
			before := state.Snapshot()
			state.SetOpacity(40)
			after := state.Snapshot()

			Expect(after.Config.OpacityPercent).To(Equal(40))
			after.Config = before.Config
			Expect(after).To(Equal(before))
		})
	})

	Context("when reset", func() {
		It("should produce identical state twice in a row", func() {
			state := New(newConfig(2, 3, 4))
			tickN(state, 200)
			state.TogglePause()

			state.Reset()
			first := state.Snapshot()
			state.Reset()
			Expect(state.Snapshot()).To(Equal(first))
			Expect(first.RemainingTotalSeconds).To(Equal(360))
			Expect(first.Paused).To(BeFalse())
			Expect(first.Stopped).To(BeFalse())
		})
	})
})

var _ = Describe("FormatTime", func() {
	It("should render minutes and seconds", func() {
		Expect(FormatTime(125)).To(Equal("02:05"))
		Expect(FormatTime(0)).To(Equal("00:00"))
		Expect(FormatTime(3600)).To(Equal("60:00"))
	})

	It("should not clamp negative input", func() {
		Expect(FormatTime(-1)).To(Equal("00:-1"))
	})
})

var _ = Describe("Signal", func() {
	It("should name every case", func() {
		Expect(SignalContinue.String()).To(Equal("continue"))
		Expect(SignalQuestionAdvanced.String()).To(Equal("question_advanced"))
		Expect(SignalBlockAdvanced.String()).To(Equal("block_advanced"))
		Expect(SignalCompleted.String()).To(Equal("completed"))
	})
})
