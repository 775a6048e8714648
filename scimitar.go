// This file is part of Scimitar.
//
// Scimitar is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Scimitar is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Scimitar.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/scimitar-emu/scimitar/cartridgeloader"
	"github.com/scimitar-emu/scimitar/curated"
	"github.com/scimitar-emu/scimitar/digest"
	"github.com/scimitar-emu/scimitar/disassembly"
	"github.com/scimitar-emu/scimitar/govern"
	"github.com/scimitar-emu/scimitar/hardware"
	"github.com/scimitar-emu/scimitar/hardware/device"
	"github.com/scimitar-emu/scimitar/hardware/events"
	"github.com/scimitar-emu/scimitar/hardware/memory/cartridge"
	"github.com/scimitar-emu/scimitar/hardware/preferences"
	"github.com/scimitar-emu/scimitar/logger"
	"github.com/scimitar-emu/scimitar/modalflag"
	"github.com/scimitar-emu/scimitar/performance"
	"github.com/scimitar-emu/scimitar/prefs"
	"github.com/scimitar-emu/scimitar/screenshot"
	"github.com/scimitar-emu/scimitar/statsview"
	"github.com/scimitar-emu/scimitar/version"
	"github.com/scimitar-emu/scimitar/wavwriter"
)

// default number of cycles a test ROM is given to reach the marker opcode.
// about thirty seconds of emulated time
const defaultTestLimit = 125829120

func main() {
	// #ctrlc ends the emulation at the next instruction boundary
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Args[1:], os.Stdout, intChan))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(args []string, output io.Writer, intChan <-chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TEST", "INFO", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, intChan)

	case "TEST":
		err = testROM(md, output)

	case "INFO":
		err = info(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags that affect the hardware preferences. shared by all modes that
// create a Game Boy.
type hardwareFlags struct {
	bootROM *string
	useBoot *bool
	model   *string
	random  *bool
	watch   *string
	prefs   *string
	log     *bool
}

func addHardwareFlags(md *modalflag.Modes) *hardwareFlags {
	return &hardwareFlags{
		bootROM: md.AddString("bootrom", "", "boot ROM file (implies -useboot)"),
		useBoot: md.AddBool("useboot", false, "run the boot ROM before the cartridge"),
		model:   md.AddString("model", "", "model to emulate: DMG0, DMG, MGB, SGB, SGB2"),
		random:  md.AddBool("random", false, "randomise work RAM and high RAM on reset"),
		watch:   md.AddString("watch", "", "comma separated list of addresses to watch"),
		prefs:   md.AddString("prefs", "", "preferences for this run (key::value; key::value)"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// commandLine returns the flags as a preferences command line.
func (hf *hardwareFlags) commandLine() string {
	var s []string
	if *hf.model != "" {
		s = append(s, fmt.Sprintf("hardware.model::%s", *hf.model))
	}
	if *hf.bootROM != "" {
		s = append(s, fmt.Sprintf("hardware.bootrom::%s", *hf.bootROM))
		s = append(s, "hardware.useBootROM::true")
	} else if *hf.useBoot {
		s = append(s, "hardware.useBootROM::true")
	}
	if *hf.random {
		s = append(s, "hardware.randomState::true")
	}
	if *hf.watch != "" {
		s = append(s, fmt.Sprintf("hardware.watchpoints::%s", *hf.watch))
	}
	if *hf.prefs != "" {
		s = append(s, *hf.prefs)
	}
	return strings.Join(s, "; ")
}

// newGameBoy creates a Game Boy with the cartridge attached. preferences are
// loaded from disk and overridden by the flags.
func (hf *hardwareFlags) newGameBoy(output io.Writer, filename string) (*hardware.GameBoy, error) {
	setEcho(output, *hf.log)

	prefs.PushCommandLineStack(hf.commandLine())
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "scimitar", "unused preferences: %s", unused)
		}
	}()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	boot, err := hardware.FindBootROM(p)
	if err != nil {
		return nil, err
	}

	cart := cartridge.NewCartridge()
	err = cart.Attach(cartridgeloader.NewLoader(filename))
	if err != nil {
		return nil, err
	}

	return hardware.NewGameBoy(p, cart, boot)
}

func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, output io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	cycles := md.AddInt("cycles", 0, "number of cycles to run for (0 for no limit)")
	frames := md.AddInt("frames", 0, "number of frames to run for (0 for no limit)")
	wav := md.AddString("wav", "", "record audio to wav file")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 2, "scaling of the screenshot")
	viz := md.AddString("memviz", "", "write the final CPU state to a graphviz file")
	dig := md.AddBool("digest", false, "print video and audio digests at the end of the run")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := hf.newGameBoy(output, filename)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	// build the device chain
	headless := &device.Headless{FrameLimit: *frames}
	var dev device.Device = headless

	var scr *screenshot.Device
	if *shot != "" {
		scr = screenshot.NewDevice(dev)
		dev = scr
	}

	var videoDigest *digest.Video
	var audioDigest *digest.Audio
	var mixer mixers
	if *dig {
		videoDigest = digest.NewVideo(dev)
		dev = videoDigest
		audioDigest = digest.NewAudio()
		mixer = append(mixer, audioDigest)
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		mixer = append(mixer, aw)
	}

	if len(mixer) > 0 {
		dev = host{Device: dev, AudioMixer: mixer}
	}

	var q events.Queue
	check := interruptCheck(intChan)

	var runErr error
	if *cycles > 0 {
		runErr = gb.RunForCycles(uint64(*cycles), dev, &q, check)
	} else {
		runErr = gb.Run(dev, &q, check)
	}

	for _, e := range q.Drain() {
		fmt.Fprintf(output, "%s\n", e)
	}

	if len(mixer) > 0 {
		if err := mixer.EndMixing(); err != nil {
			return err
		}
	}

	if scr != nil {
		if err := scr.Save(*shot, *scale); err != nil {
			return err
		}
	}

	if *viz != "" {
		if err := writeMemviz(*viz, gb); err != nil {
			return err
		}
	}

	fmt.Fprintf(output, "%d cycles, %d frames\n", gb.Cycles(), headless.Frames)

	if videoDigest != nil {
		fmt.Fprintf(output, "video digest: %s\n", videoDigest.Hash())
		fmt.Fprintf(output, "audio digest: %s\n", audioDigest.Hash())
	}

	return runErr
}

// interruptCheck returns a continueCheck function that ends the emulation
// when an interrupt signal is received.
func interruptCheck(intChan <-chan os.Signal) func() (govern.State, error) {
	// checking the channel on every instruction is wasteful
	performanceBrake := 0

	return func() (govern.State, error) {
		performanceBrake++
		if performanceBrake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceBrake = 0

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	}
}

func testROM(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	limit := md.AddInt("limit", defaultTestLimit, "number of cycles before the test is abandoned")
	md.AdditionalHelp(fmt.Sprintf("The test ROM signals completion by executing opcode %#02x. The test has passed if\nregister A is zero and registers B, C, D, E, H and L hold 3, 5, 8, 13, 21 and 34.", hardware.TestROMOpcode))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	gb, err := hf.newGameBoy(output, filename)
	if err != nil {
		return err
	}

	passed, err := gb.RunTestROM(uint64(*limit), &device.Headless{})
	if err != nil {
		return err
	}

	if s := gb.Serial.Output(); s != "" {
		fmt.Fprintf(output, "%s\n", strings.TrimRight(s, "\n"))
	}

	if !passed {
		fmt.Fprintf(output, "FAILED %s\n", gb.CPU)
		return curated.Errorf("test ROM failed")
	}

	fmt.Fprintf(output, "PASSED after %d cycles\n", gb.Cycles())

	return nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	setEcho(output, false)

	cart := cartridge.NewCartridge()
	err = cart.Attach(cartridgeloader.NewLoader(filename))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", cart.Header)
	fmt.Fprintf(output, "mapper: %s\n", cart.Format())
	fmt.Fprintf(output, "sha1: %s\n", cart.Hash)

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	from := md.AddString("from", "0100", "first address to disassemble")
	to := md.AddString("to", "014f", "last address to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	rng, err := preferences.ParseAddresses(fmt.Sprintf("%s,%s", *from, *to))
	if err != nil {
		return err
	}
	if len(rng) != 2 {
		return curated.Errorf("disassembly requires a start and an end address")
	}

	setEcho(output, false)

	cart := cartridge.NewCartridge()
	err = cart.Attach(cartridgeloader.NewLoader(filename))
	if err != nil {
		return err
	}

	entries, err := disassembly.FromCartridge(cart, rng[0], rng[1])
	if err != nil {
		return err
	}

	return disassembly.Write(output, entries)
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	hf := addHardwareFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "create profile reports: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := cartridgeArg(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	gb, err := hf.newGameBoy(output, filename)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, gb, *duration)
}
