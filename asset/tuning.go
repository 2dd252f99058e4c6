package asset

// DefaultTuning is the embedded TOML document holding every gameplay and presentation tunable
// Durations are integer milliseconds, physics values are pixels and seconds
const DefaultTuning = `

# === Display ===
[display]
title = "Star Sprite: Astral Fields"
width = 600
height = 400
fps = 60

# === Level layout ===
[level]
length = 2200
floor_y = 330
wall_margin = 20

# === Player (StarSprite) ===
[player]
spawn_x = 100
radius = 18
max_speed = 180.0      # px/s
accel = 1200.0         # px/s^2 while a direction is held
friction = 6.5         # proportional decay per second without input
gravity = 1500.0
boost_velocity = -420.0
fall_multiplier = 1.35 # extra gravity while falling
low_multiplier = 2.0   # extra gravity when boost is released early
coyote_ms = 120
buffer_ms = 120

# === Patrol enemies (NebulaDrifter) ===
[drifter]
speed = 80.0
patrol_margin = 80.0
half_size = 10
spawn_x = [350, 700, 1100, 1500, 1800]

# === Boss (CosmoTitan) ===
[titan]
end_offset = 180.0
rise = 60.0
hp = 6
width = 80
height = 140
top_offset = 80

# === Audio ===
[audio]
enabled = true
sample_rate = 44100
buffer_ms = 100
volume = 0.4
attack_ms = 5
release_ms = 30

[audio.boost]
freq = 880.0
ms = 140

[audio.zap]
freq = 520.0
ms = 100

# === Logging ===
[log]
path = "logs/star-sprite.log"
level = "info"

# === Terminal input ===
[input]
initial_hold_ms = 550
repeat_hold_ms = 90
`
