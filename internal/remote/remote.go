package remote

import "sync"

// State is a read-only snapshot of the controller.
type State struct {
	IsOn           bool `json:"is_on"`
	CurrentChannel int  `json:"current_channel"`
	Volume         int  `json:"volume"`
	Muted          bool `json:"muted"`
}

// Control models the Piter Face remote control. All methods are safe for
// concurrent use.
type Control struct {
	mu       sync.Mutex
	settings Settings

	isOn       bool
	channel    int
	volume     int
	muted      bool
	prevVolume int
	hasPrev    bool
}

// NewControl constructs a powered-off controller with the given settings.
func NewControl(settings Settings) (*Control, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Control{
		settings: settings,
		channel:  settings.DefaultChannel,
		volume:   settings.DefaultVolume,
	}, nil
}

// Settings returns the immutable settings the controller was built with.
func (c *Control) Settings() Settings {
	return c.settings
}

// Snapshot returns the current state.
func (c *Control) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		IsOn:           c.isOn,
		CurrentChannel: c.channel,
		Volume:         c.volume,
		Muted:          c.muted,
	}
}

// PowerOn turns the device on and resets channel, volume and mute state to
// their defaults.
func (c *Control) PowerOn() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.powerOnLocked()
}

// PowerOff turns the device off. The channel and volume survive until the
// next PowerOn resets them.
func (c *Control) PowerOff() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.powerOffLocked()
}

// TogglePower flips the power state.
func (c *Control) TogglePower() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isOn {
		c.powerOffLocked()
	} else {
		c.powerOnLocked()
	}
}

func (c *Control) powerOnLocked() {
	c.isOn = true
	c.muted = false
	c.hasPrev = false
	c.volume = c.settings.DefaultVolume
	c.channel = c.settings.DefaultChannel
}

func (c *Control) powerOffLocked() {
	c.isOn = false
	c.muted = false
	c.hasPrev = false
}

// SetChannel tunes to the given channel.
func (c *Control) SetChannel(channel int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if channel < c.settings.MinChannel || channel > c.settings.MaxChannel {
		return ErrChannelRange
	}
	c.channel = channel
	return nil
}

// NextChannel advances to the next channel, wrapping around at the top of
// the range.
func (c *Control) NextChannel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if c.channel >= c.settings.MaxChannel {
		c.channel = c.settings.MinChannel
	} else {
		c.channel++
	}
	return nil
}

// PreviousChannel goes back one channel, wrapping around at the bottom of
// the range.
func (c *Control) PreviousChannel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if c.channel <= c.settings.MinChannel {
		c.channel = c.settings.MaxChannel
	} else {
		c.channel--
	}
	return nil
}

// IncreaseVolume raises the volume by step, clamped to the maximum. Raising
// the volume above zero clears a pending mute.
func (c *Control) IncreaseVolume(step int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if step < 0 {
		return ErrNegativeStep
	}
	c.volume = min(c.volume+step, c.settings.MaxVolume)
	if c.muted && c.volume > 0 {
		c.muted = false
		c.hasPrev = false
	}
	return nil
}

// DecreaseVolume lowers the volume by step, clamped to the minimum. Reaching
// zero behaves like a mute without a remembered volume.
func (c *Control) DecreaseVolume(step int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if step < 0 {
		return ErrNegativeStep
	}
	c.volume = max(c.volume-step, c.settings.MinVolume)
	if c.volume == 0 {
		c.muted = true
	} else {
		c.muted = false
		c.hasPrev = false
	}
	return nil
}

// Mute silences the device, remembering the current volume for Unmute.
func (c *Control) Mute() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if !c.muted {
		c.prevVolume = c.volume
		c.hasPrev = true
		c.volume = 0
		c.muted = true
	}
	return nil
}

// Unmute restores the volume remembered by Mute, falling back to the default
// volume when nothing was remembered.
func (c *Control) Unmute() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOn {
		return ErrPoweredOff
	}
	if c.muted {
		if c.hasPrev {
			c.volume = c.prevVolume
		} else {
			c.volume = c.settings.DefaultVolume
		}
		c.muted = false
		c.hasPrev = false
	}
	return nil
}
