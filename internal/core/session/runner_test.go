package session_test

import (
	"context"
	"io"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "wolftimer/internal/core/session"
)

func testOptions() Options {
	return DefaultOptions().
		WithLogOutput(io.Discard).
		WithTickInterval(time.Millisecond)
}

var _ = Describe("Runner", func() {

	Context("when running a short session", func() {
		It("should publish completion and close its channels", func() {
			runner := NewRunner(newConfig(1, 1, 2), testOptions())
			events := runner.Subscribe(256)

			done := make(chan error, 1)
			go func() {
				done <- runner.Run(context.Background())
			}()

			var completed bool
			var questionAdvanced bool
			for event := range events {
				if event.Signal == SignalQuestionAdvanced {
					questionAdvanced = true
				}
				if event.Type == EventCompleted {
					completed = true
					Expect(event.Signal).To(Equal(SignalCompleted))
					Expect(event.Snapshot.RemainingTotalSeconds).To(Equal(0))
				}
			}

			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
			Expect(completed).To(BeTrue())
			Expect(questionAdvanced).To(BeTrue())
		})

		It("should refuse a second concurrent Run", func() {
			runner := NewRunner(newConfig(30, 4, 10), testOptions())
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			events := runner.Subscribe(1024)
			go runner.Run(ctx)
			Eventually(events).Should(Receive())

			Expect(runner.Run(ctx)).To(Equal(ErrRunnerActive))
		})

		It("should return the context error when cancelled", func() {
			runner := NewRunner(newConfig(30, 4, 10), testOptions())
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			Expect(runner.Run(ctx)).To(Equal(context.DeadlineExceeded))
		})
	})

	Context("when stopped", func() {
		It("should not advance the counters", func() {
			runner := NewRunner(newConfig(1, 1, 1), testOptions())
			runner.Stop()
			before := runner.Snapshot()

			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			Expect(runner.Run(ctx)).To(Equal(context.DeadlineExceeded))
			Expect(runner.Snapshot()).To(Equal(before))
		})
	})

	Context("when applying commands", func() {
		It("should publish the new run state", func() {
			runner := NewRunner(newConfig(1, 1, 1), DefaultOptions().WithLogOutput(io.Discard))
			events := runner.Subscribe(4)

			runner.TogglePause()
			var event Event
			Expect(events).To(Receive(&event))
			Expect(event.Type).To(Equal(EventRunState))
			Expect(event.Snapshot.Paused).To(BeTrue())

			runner.Halt()
			Expect(events).To(Receive(&event))
			Expect(event.Snapshot.Paused).To(BeFalse())
			Expect(event.Snapshot.Stopped).To(BeTrue())

			runner.Start()
			Expect(events).To(Receive(&event))
			Expect(event.Snapshot.Running()).To(BeTrue())
		})

		It("should drop events for a full subscriber instead of blocking", func() {
			runner := NewRunner(newConfig(1, 1, 1), DefaultOptions().WithLogOutput(io.Discard))
			events := runner.Subscribe(1)

			runner.TogglePause()
			runner.TogglePause()
			runner.TogglePause()

			Expect(events).To(HaveLen(1))
			Expect(runner.Snapshot().Paused).To(BeTrue())
		})
	})

	Context("when reconfigured", func() {
		It("should only take over the opacity when timing is unchanged", func() {
			config := newConfig(1, 1, 2)
			runner := NewRunner(config, DefaultOptions().WithLogOutput(io.Discard))
			runner.TogglePause()

			config.OpacityPercent = 30
			Expect(runner.Reconfigure(config)).To(BeFalse())

			snapshot := runner.Snapshot()
			Expect(snapshot.Config.OpacityPercent).To(Equal(30))
			Expect(snapshot.Paused).To(BeTrue())
		})

		It("should restart the countdown and keep a paused session paused", func() {
			runner := NewRunner(newConfig(1, 1, 2), DefaultOptions().WithLogOutput(io.Discard))
			runner.TogglePause()

			Expect(runner.Reconfigure(newConfig(2, 2, 4))).To(BeTrue())

			snapshot := runner.Snapshot()
			Expect(snapshot.RemainingTotalSeconds).To(Equal(240))
			Expect(snapshot.Paused).To(BeTrue())
			Expect(snapshot.Stopped).To(BeFalse())
		})

		It("should keep a stopped session stopped", func() {
			runner := NewRunner(newConfig(1, 1, 2), DefaultOptions().WithLogOutput(io.Discard))
			runner.Stop()

			Expect(runner.Reconfigure(newConfig(5, 1, 2))).To(BeTrue())

			snapshot := runner.Snapshot()
			Expect(snapshot.RemainingTotalSeconds).To(Equal(300))
			Expect(snapshot.Stopped).To(BeTrue())
			Expect(snapshot.Running()).To(BeFalse())
		})

		It("should publish a reconfigured event", func() {
			runner := NewRunner(newConfig(1, 1, 2), DefaultOptions().WithLogOutput(io.Discard))
			events := runner.Subscribe(1)

			runner.Reconfigure(newConfig(3, 1, 2))
			var event Event
			Expect(events).To(Receive(&event))
			Expect(event.Type).To(Equal(EventReconfigured))
			Expect(event.Snapshot.Config.SecondsPerBlock()).To(Equal(180))
		})
	})
})
